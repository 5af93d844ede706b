package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/pbflite"
	"github.com/anirudhraja/pbflite/dump"
	"github.com/anirudhraja/pbflite/registry"
	"github.com/anirudhraja/pbflite/wire"
)

// Address is a nested record.
type Address struct {
	Street string
	City   string
	Zip    uint64
}

func (a *Address) WriteFields(w *wire.Writer) {
	w.WriteStringField(1, a.Street)
	w.WriteStringField(2, a.City)
	w.WriteVarintField(3, a.Zip)
}

func (a *Address) ReadField(num wire.FieldNumber, wt wire.WireType, r *wire.Reader) error {
	var err error
	switch num {
	case 1:
		a.Street, err = r.ReadString()
	case 2:
		a.City, err = r.ReadString()
	case 3:
		a.Zip, err = r.ReadVarint()
	default:
		err = r.Skip(wt)
	}
	return err
}

// User exercises every scalar family plus nesting and packed repeats.
type User struct {
	ID       uint64
	Name     string
	Balance  int64   // zigzag, goes negative
	Rating   float32 // fixed32
	JoinedAt int64   // fixed64 timestamp
	Active   bool
	Home     *Address
	Scores   []uint64 // packed
	Avatar   []byte
}

func (u *User) WriteFields(w *wire.Writer) {
	w.WriteVarintField(1, u.ID)
	w.WriteStringField(2, u.Name)
	w.WriteSint64Field(3, u.Balance)
	w.WriteFloat32Field(4, u.Rating)
	w.WriteSfixed64Field(5, u.JoinedAt)
	w.WriteBoolField(6, u.Active)
	if u.Home != nil {
		pbflite.WriteMessage(w, 7, u.Home)
	}
	if len(u.Scores) > 0 {
		w.WritePackedVarintField(8, u.Scores)
	}
	if len(u.Avatar) > 0 {
		w.WriteBytesField(9, u.Avatar)
	}
}

func (u *User) ReadField(num wire.FieldNumber, wt wire.WireType, r *wire.Reader) error {
	var err error
	switch num {
	case 1:
		u.ID, err = r.ReadVarint()
	case 2:
		u.Name, err = r.ReadString()
	case 3:
		u.Balance, err = r.ReadSint64()
	case 4:
		u.Rating, err = r.ReadFloat32()
	case 5:
		u.JoinedAt, err = r.ReadSfixed64()
	case 6:
		u.Active, err = r.ReadBool()
	case 7:
		u.Home = &Address{}
		err = pbflite.ReadMessage(r, u.Home)
	case 8:
		u.Scores, err = r.ReadPackedVarint()
	case 9:
		u.Avatar, err = r.ReadBytes()
	default:
		err = r.Skip(wt)
	}
	return err
}

func main() {
	fmt.Println("pbflite sample app")
	fmt.Println(strings.Repeat("=", 60))

	user := &User{
		ID:       42,
		Name:     "John Doe",
		Balance:  -1250,
		Rating:   4.8,
		JoinedAt: 1609459200, // 2021-01-01
		Active:   true,
		Home: &Address{
			Street: "123 Main St",
			City:   "San Francisco",
			Zip:    94105,
		},
		Scores: []uint64{98, 87, 100},
		Avatar: []byte{0x89, 0x50, 0x4E, 0x47}, // PNG magic
	}

	data := pbflite.Marshal(user)
	fmt.Printf("Encoded user: %d bytes\n", len(data))

	var decoded User
	if err := pbflite.Unmarshal(data, &decoded); err != nil {
		log.Fatalf("Failed to unmarshal user: %v", err)
	}

	fmt.Println("\nRound trip result:")
	fmt.Printf("  User: %s (ID: %d)\n", decoded.Name, decoded.ID)
	fmt.Printf("  Balance: %d, Rating: %.1f, Active: %v\n", decoded.Balance, decoded.Rating, decoded.Active)
	fmt.Printf("  Address: %s, %s %d\n", decoded.Home.Street, decoded.Home.City, decoded.Home.Zip)
	fmt.Printf("  Scores: %v\n", decoded.Scores)
	fmt.Printf("  Avatar: % x\n", decoded.Avatar)

	// Old readers skip fields they have never heard of. Simulate a newer
	// writer by appending an extra field, then decode with today's User.
	newer := wire.NewWriter()
	newer.WriteRaw(data)
	newer.WriteStringField(20, "field from the future")
	forward := newer.Take()

	var old User
	if err := pbflite.Unmarshal(forward, &old); err != nil {
		log.Fatalf("Failed to unmarshal newer payload: %v", err)
	}
	fmt.Printf("\nDecoded a newer payload (%d bytes) with an old reader: %s\n", len(forward), old.Name)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Wire dump (field names via the debug registry):")
	fmt.Println(strings.Repeat("=", 60))

	reg := registry.NewRegistry()
	reg.RegisterMessage("User", map[wire.FieldNumber]registry.Field{
		1: {Name: "id"},
		2: {Name: "name"},
		3: {Name: "balance"},
		4: {Name: "rating"},
		5: {Name: "joined_at"},
		6: {Name: "active"},
		7: {Name: "home", Nested: "Address"},
		8: {Name: "scores"},
		9: {Name: "avatar"},
	})
	reg.RegisterMessage("Address", map[wire.FieldNumber]registry.Field{
		1: {Name: "street"},
		2: {Name: "city"},
		3: {Name: "zip"},
	})

	console := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	d := dump.New(console, reg)
	if err := d.Dump(data, "User"); err != nil {
		log.Fatalf("Failed to dump wire data: %v", err)
	}
}
