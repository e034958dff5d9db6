package dialogue

const (
	bannerText = "CareBot"

	welcomeText = "Welcome to the CareBot!\n" +
		"This chatbot is still a work-in-progress, and it's not intended as a substitute for your doctor.\n" +
		"So please, if you need medical assistance call a real doctor!"

	infoPrompt = "What is your name and date of birth?\n" +
		"Enter this information in the form: First Last MM/DD/YY"
	badNameText = "I'm sorry, the format of your name is wrong. The correct format is: FirstName LastName.\n" +
		"Please try again."
	badDOBText = "I'm sorry, the format of your date of birth is wrong. The correct format is: MM/DD/YY.\n" +
		"Please try again."
	profileText = "Thanks %s! I'll make a note that you were born on %s"

	healthPrompt  = "How are you feeling today?"
	repeatPrompt  = "I'm sorry, I didn't understand that.\nCan you repeat?"
	healthyText   = "Great! It sounds like you're healthy."
	unhealthyText = "Oh no! It sounds like you're unhealthy."
	oddLabelText  = "Hmm, that's weird. My classifier predicted a value of: %d"

	stylePrompt    = "I'd also like to do an informal psychological analysis.\nWhat's on your mind today?"
	moreDetailText = "I'm sorry, can you give me more details?\n" +
		"Please use longer/multiple sentences, otherwise I won't be able to analyze your style!"
	correlatesText = "Thanks! Based on my stylistic analysis, I've identified the following psychological correlates in your response:"

	menuPrompt = "How can I help you now?\n" +
		"   a) Quit the conversation\n" +
		"   b) Redo the health check\n" +
		"   c) Redo the stylistic analysis"
	menuEmptyText = "I'm sorry, but you need to say something for me to understand you."
	rephraseText  = "I'm sorry, but I didn't understand that.\nCan you rephrase what you just said?"
	apologyText   = "I'm sorry, but today I'm quite slow.\n" +
		"That's not your fault, it's just that sometimes it happens.\n" +
		"I need to fix myself a little, then we can talk again!"

	farewellText = "Thanks for talking with me!\nSee you again!"
)
