package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/chainmap"
)

func main() {
	m, err := chainmap.NewDefault[int, string](chainmap.HashInt[int])
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}

	// Insert through Put, then through get-or-insert slots.
	m.Put(1, "A")
	m.Put(2, "B")
	m.Put(3, "C")
	m.Put(4, "D")
	m.Put(5, "E")
	m.Put(6, "F")

	for i := 7; i <= 19; i++ {
		*m.GetOrInsert(i) = string(rune('A' + i - 1))
	}

	fmt.Printf("Inserted %d entries (capacity %d)\n", m.Len(), m.Cap())
	for k, v := range m.Entries() {
		fmt.Printf("Key %d => Value %s\n", k, v)
	}

	// Remove the first batch and show what remains.
	for i := 1; i <= 6; i++ {
		m.Remove(i)
	}

	fmt.Printf("After removals: %d entries\n", m.Len())
	for k, v := range m.Entries() {
		fmt.Printf("Key %d => Value %s\n", k, v)
	}

	m.Clear()

	fmt.Printf("After clear: %d entries\n", m.Len())
	for k := range m.Keys() {
		fmt.Printf("Unexpected key %d\n", k)
	}

	fmt.Println("Example completed successfully")
}
