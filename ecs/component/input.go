package component

// Intent is what an actor wants to do this tick. Left and Right are
// continuous; Jump and Attack are edges and are cleared once consumed.
type Intent struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

var IntentComponent = NewComponent[Intent]()

// Controls binds an actor to key names understood by the key source.
type Controls struct {
	Left   string
	Right  string
	Jump   string
	Attack string
}

var ControlsComponent = NewComponent[Controls]()
