package component

// Health is unsigned; zero is terminal and damage saturates there.
type Health struct {
	Current uint32
	Initial uint32
}

var HealthComponent = NewComponent[Health]()
