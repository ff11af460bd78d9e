package constants

// Room status
const (
	RoomStatusAvailable = "DISPONIBLE"
	RoomStatusOccupied  = "OCUPADA"
)

// Reservation state
const (
	ReservationActive    = "activa"
	ReservationFinished  = "finalizada"
	ReservationCancelled = "cancelada"
)

// Room types
const (
	RoomTypeSingle = "simple"
	RoomTypeDouble = "doble"
	RoomTypeSuite  = "suite"
	RoomTypeFamily = "familiar"
	RoomTypeLuxury = "lujo"
)

// User roles
const (
	RoleAdmin      = "ADMIN_ROLE"
	RoleHotelAdmin = "HOTEL_ADMIN_ROLE"
	RoleUser       = "USER_ROLE"
)

// DateLayout is the wire format for reservation dates.
const DateLayout = "2006-01-02"
