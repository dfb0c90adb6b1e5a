package component

type MonsterTag struct{}

var MonsterTagComponent = NewComponent[MonsterTag]()

type HunterTag struct{}

var HunterTagComponent = NewComponent[HunterTag]()

type ArenaTag struct{}

var ArenaTagComponent = NewComponent[ArenaTag]()
