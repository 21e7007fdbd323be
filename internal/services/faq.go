package services

import "kindred/internal/models/response_models"

var faqEntries = []response_models.FAQEntry{
	{
		Category: "account",
		Question: "Why can't I sign in right after signing up?",
		Answer:   "New accounts join a waitlist. You can sign in as soon as an administrator approves your account, and we will email you when that happens.",
	},
	{
		Category: "account",
		Question: "How do I change my companion's avatar or voice?",
		Answer:   "Open your profile settings and pick a new avatar and voice. Voice speed can be adjusted there as well.",
	},
	{
		Category: "friends",
		Question: "How do I add a friend?",
		Answer:   "Send a friend request from the friends page. Once they accept, you can message each other and they will receive your emotion alerts.",
	},
	{
		Category: "friends",
		Question: "Who receives my emotion alerts?",
		Answer:   "Only friends who have accepted your friend request. Pending and rejected requests never receive alerts.",
	},
	{
		Category: "mood",
		Question: "Can I log my mood more than once a day?",
		Answer:   "You get one mood entry per day. Checking in again the same day replaces that day's entry with your latest mood.",
	},
	{
		Category: "conversation",
		Question: "Is my conversation with the companion stored?",
		Answer:   "No. The conversation history lives in your browser and is sent along with each message; the server does not keep it.",
	},
	{
		Category: "support",
		Question: "Is this a crisis service?",
		Answer:   "No. If you are in danger or thinking about harming yourself, contact your local emergency number or a crisis line right away.",
	},
}
