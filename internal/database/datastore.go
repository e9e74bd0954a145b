package database

// DataStore defines the unified interface for all data operations needed by
// the service layer. It exists so the service can be tested against fakes.
type DataStore interface {
	TodoRepository
}
