package entity

type Room struct {
	Base
	RoomNumber int `db:"room_number"`
	Capacity   int `db:"capacity"`
	Rows       int `db:"rows"`    // number of seat rows (A, B, C, ...)
	Columns    int `db:"columns"` // seats per row (1..Columns)
}
