package component

type Damage struct {
	Value uint32
}

var DamageComponent = NewComponent[Damage]()
