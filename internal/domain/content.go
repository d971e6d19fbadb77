package domain

// Static copy shown by every presentation surface.
const (
	AppTitle   = "TurskMind: Tüürk Wellness 🌄🪔"
	AppTagline = "Discover Tüürk-inspired wellness to reduce stress and find balance! 🚪✨"
	MenuHeader = "TurskMind Menu 🧭"

	PracticesHeader    = "Choose Your Wellness Practice 🌟"
	QuickTip           = "Quick Tip: Find a quiet space to immerse in the Tüürk experience! 🕉️"
	AffirmationsHeader = "Tüürk Affirmations 🌟"
	AffirmationsIntro  = "Uplift your spirit with affirmations inspired by Tüürk wisdom! Choose, generate, or create your own. 🧠💪"
	CustomPrompt       = "Create Your Own Affirmation ✍️"
	ProgressHeader     = "Your Wellness Journey 📈"
	ProgressIntro      = "Track your Tüürk-inspired wellness progress! 🏆"
	AchievementsHeader = "Your Achievements 🏅"
	AboutHeader        = "About TurskMind ℹ️"

	AboutText = `TurskMind is your gateway to wellness inspired by Tüürk culture, uniting traditions from Kazakhstan, Turkey, Uzbekistan, Kyrgyzstan, Azerbaijan, and Turkmenistan. 🌍
Enjoy meditations with Altai serenity, breathing exercises with Pamir winds, and micro-rituals like gratitude and affirmations rooted in Tüürk wisdom. 🧘‍♀️🙏
Reduce stress, enhance focus, and connect with your heritage! 🎶✨`

	Proverb = "Tüürk Proverb: The steppe teaches patience, the mountains teach strength. 🏞️💪"
)
