package component

type ActorTag struct{}

var ActorTagComponent = NewComponent[ActorTag]()

type PlatformTag struct{}

var PlatformTagComponent = NewComponent[PlatformTag]()
