package component

// Bot marks an actor whose intent comes from a script instead of keys.
type Bot struct {
	Script string
}

var BotComponent = NewComponent[Bot]()
