package component

// Name lets systems look an entity up by the name its prefab declares.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
