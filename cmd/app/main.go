package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"kindred/cmd/fx/account_fx"
	"kindred/cmd/fx/chat_fx"
	"kindred/cmd/fx/config_fx"
	"kindred/cmd/fx/controllers_fx"
	"kindred/cmd/fx/conversation_fx"
	"kindred/cmd/fx/dashboard_fx"
	"kindred/cmd/fx/db_fx"
	"kindred/cmd/fx/emotion_fx"
	"kindred/cmd/fx/feedback_fx"
	"kindred/cmd/fx/friends_fx"
	"kindred/cmd/fx/logger_fx"
	"kindred/cmd/fx/mail_fx"
	"kindred/cmd/fx/memcache_fx"
	"kindred/cmd/fx/mood_fx"
	"kindred/cmd/fx/queue_fx"
	"kindred/cmd/fx/realtime_fx"
	"kindred/cmd/fx/speech_fx"
	"kindred/internal/api"
	"kindred/internal/api/controllers"
	"kindred/pkg/config"
	mem "kindred/pkg/memcache"
	"kindred/pkg/middleware"
	"kindred/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		queue_fx.Module,
		realtime_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		friends_fx.Module,
		chat_fx.Module,
		emotion_fx.Module,
		mood_fx.Module,
		feedback_fx.Module,
		conversation_fx.Module,
		speech_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config       *config.Config
	Log          *zap.Logger
	Tokens       *utils.TokenIssuer
	Denylist     mem.TokenDenylist
	AdminChecker middleware.AdminChecker

	Account      *controllers.AccountController
	Admin        *controllers.AdminController
	Friends      *controllers.FriendsController
	Chat         *controllers.ChatController
	Emotion      *controllers.EmotionController
	Mood         *controllers.MoodController
	Feedback     *controllers.FeedbackController
	Conversation *controllers.ConversationController
	Speech       *controllers.SpeechController
	Realtime     *controllers.RealtimeController
	Dashboard    *controllers.DashboardController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(api.RouterDeps{
		Log:          p.Log,
		Tokens:       p.Tokens,
		Denylist:     p.Denylist,
		AdminChecker: p.AdminChecker,
		CORSOrigins:  p.Config.CORSOrigins,
	}, api.Controllers{
		Account:      p.Account,
		Admin:        p.Admin,
		Friends:      p.Friends,
		Chat:         p.Chat,
		Emotion:      p.Emotion,
		Mood:         p.Mood,
		Feedback:     p.Feedback,
		Conversation: p.Conversation,
		Speech:       p.Speech,
		Realtime:     p.Realtime,
		Dashboard:    p.Dashboard,
	})
}
