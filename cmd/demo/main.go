// The demo runs the fixed SwiftRide booking script: two drivers, three
// customers, three bookings in sequence, with the outcome of each
// printed to stdout. The third booking finds the pool exhausted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"swiftride/internal/system"
)

func main() {
	ctx := context.Background()

	// A nop logger keeps the scripted output free of log lines.
	sys := system.New(os.Stdout, zap.NewNop())

	if _, err := sys.AddDriver(ctx, "Alice"); err != nil {
		log.Fatalf("add driver: %v", err)
	}
	if _, err := sys.AddDriver(ctx, "Bob"); err != nil {
		log.Fatalf("add driver: %v", err)
	}

	john, err := sys.AddCustomer(ctx, "John")
	if err != nil {
		log.Fatalf("add customer: %v", err)
	}
	rebecca, err := sys.AddCustomer(ctx, "Rebecca")
	if err != nil {
		log.Fatalf("add customer: %v", err)
	}
	mike, err := sys.AddCustomer(ctx, "Mike")
	if err != nil {
		log.Fatalf("add customer: %v", err)
	}

	fmt.Println("=== SwiftRide System Test ===")
	fmt.Println()

	fmt.Println("Task 6:")
	sys.BookRide(ctx, john, "Airport", "Downtown", 15, "Economy")

	fmt.Println("\nTask 7:")
	sys.BookRide(ctx, rebecca, "College", "Downtown", 10, "Luxury")

	fmt.Println("\nTask 8:")
	sys.BookRide(ctx, mike, "Downtown", "Shopping Mall", 5, "Pool")
}
