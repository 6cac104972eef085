package main

import (
	"context"
	"log"
	"time"

	"karting/internal/database"
	"karting/internal/modules/booking"
	"karting/internal/modules/clients"
	"karting/internal/modules/discounts"
	"karting/internal/modules/rack"
	"karting/internal/modules/rates"
	"karting/internal/repository"
)

func main() {
	ctx := context.Background()

	db, err := database.Connect("karting.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	clientRepo := repository.NewClientRepository(db)
	rackRepo := repository.NewRackRepository(db)

	log.Println("Running AutoMigrate...")
	for _, m := range []interface{ Migrate() error }{clientRepo, bookingRepo, rackRepo} {
		if err := m.Migrate(); err != nil {
			log.Fatal("AutoMigrate failed:", err)
		}
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM rack")
	db.Exec("DELETE FROM booking_attendees")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM clients")

	clientsService := clients.NewService(clientRepo)
	rackService := rack.NewService(rackRepo)
	bookingService := booking.NewService(
		bookingRepo,
		rates.NewService(),
		discounts.NewService(),
		clientsService,
		rackService,
	)

	today := time.Now()

	// ================== CLIENTS ==================
	log.Println("Creating clients...")

	// María's birthday falls on today's date so the first booking shows the
	// birthday discount.
	seedClients := []clients.RegisterClientRequest{
		{RUT: "11111111-1", Name: "María Pérez", Email: "maria@example.cl", Birthday: today.AddDate(-30, 0, 0).Format("2006-01-02")},
		{RUT: "22222222-2", Name: "Juan Soto", Email: "juan@example.cl", Birthday: "1992-03-14"},
		{RUT: "33333333-3", Name: "Camila Rojas", Email: "camila@example.cl", Birthday: "1988-11-02"},
		{RUT: "44444444-k", Name: "Pedro Fuentes", Email: "pedro@example.cl", Birthday: "2001-07-23"},
	}
	for _, req := range seedClients {
		if _, err := clientsService.Register(ctx, req); err != nil {
			log.Fatal("client seed failed: ", err)
		}
	}

	// Juan has been around this month already.
	for i := 0; i < 3; i++ {
		if err := clientsService.RecordVisit(ctx, "22222222-2"); err != nil {
			log.Fatal("visit seed failed: ", err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	confirmed, err := bookingService.SaveBooking(ctx, booking.CreateBookingRequest{
		Date:        today.Format("2006-01-02"),
		StartTime:   "14:30",
		Tier:        10,
		NumOfPeople: 4,
		Attendees: []booking.AttendeeRequest{
			{RUT: "11111111-1", Name: "María Pérez", Email: "maria@example.cl"},
			{RUT: "22222222-2", Name: "Juan Soto", Email: "juan@example.cl"},
			{RUT: "33333333-3", Name: "Camila Rojas", Email: "camila@example.cl"},
			{RUT: "99999999-9", Name: "Walk In"},
		},
	})
	if err != nil {
		log.Fatal("booking seed failed: ", err)
	}
	if err := bookingService.ConfirmBooking(ctx, confirmed.ID); err != nil {
		log.Fatal("confirm seed failed: ", err)
	}
	log.Printf("Confirmed booking #%d, total %d", confirmed.ID, confirmed.TotalAmount)

	pending, err := bookingService.SaveBooking(ctx, booking.CreateBookingRequest{
		Date:        today.AddDate(0, 0, 10).Format("2006-01-02"),
		StartTime:   "11:00",
		Tier:        15,
		NumOfPeople: 2,
		Attendees: []booking.AttendeeRequest{
			{RUT: "33333333-3", Name: "Camila Rojas", Email: "camila@example.cl"},
			{RUT: "44444444-K", Name: "Pedro Fuentes", Email: "pedro@example.cl"},
		},
	})
	if err != nil {
		log.Fatal("booking seed failed: ", err)
	}
	log.Printf("Pending booking #%d awaiting confirmation", pending.ID)

	cancelled, err := bookingService.SaveBooking(ctx, booking.CreateBookingRequest{
		Date:        today.AddDate(0, 0, 3).Format("2006-01-02"),
		StartTime:   "17:00",
		Tier:        20,
		NumOfPeople: 6,
		Attendees: []booking.AttendeeRequest{
			{RUT: "11111111-1", Name: "María Pérez"},
			{RUT: "22222222-2", Name: "Juan Soto"},
			{RUT: "33333333-3", Name: "Camila Rojas"},
			{RUT: "44444444-K", Name: "Pedro Fuentes"},
			{RUT: "88888888-8", Name: "Walk In One"},
			{RUT: "77777777-7", Name: "Walk In Two"},
		},
	})
	if err != nil {
		log.Fatal("booking seed failed: ", err)
	}
	if err := bookingService.CancelBooking(ctx, cancelled.ID); err != nil {
		log.Fatal("cancel seed failed: ", err)
	}
	log.Printf("Cancelled booking #%d kept for the record", cancelled.ID)

	log.Println("Seed completed!")
}
