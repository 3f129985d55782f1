package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Claim() ClaimRepository
	Notes() NotesRepository

	Close() error
}
