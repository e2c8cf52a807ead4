package db

import (
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"flightops/frms/internal/constants"
	gormModels "flightops/frms/internal/models/gorm"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

// Seed inserts sample flights, crew, passengers and a default admin
// account when the flights table is empty. Dev convenience only; a
// production deployment ships its own data.
func Seed(sqlxDB *sqlx.DB, ormDB *gorm.DB) error {
	var count int
	if err := sqlxDB.Get(&count, `SELECT COUNT(*) FROM flights`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	flights := [][]interface{}{
		{"IT1234", "2025-12-10 09:30", 120, 800, "Istanbul (IST)", "Berlin (BER)", "A320", nil, nil},
		{"IT2345", "2025-12-11 14:00", 180, 1500, "Istanbul (IST)", "London (LHR)", "B737", nil, nil},
		{"IT3456", "2025-12-12 20:15", 60, 400, "Ankara (ESB)", "Istanbul (IST)", "A321", "XY7890", "PartnerAir"},
	}
	for _, f := range flights {
		if _, err := sqlxDB.Exec(`
			INSERT INTO flights (
				flight_no, date_time, duration_minutes, distance_km,
				source, destination, vehicle_type, shared_flight_no, shared_company
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`, f...); err != nil {
			return err
		}
	}

	pilots := [][]interface{}{
		{"John Senior", "Turkish", "TR,EN", "A320", 2000, "senior"},
		{"Jane Junior", "German", "DE,EN", "A320", 1500, "junior"},
		{"Alex Trainee", "Turkish", "TR,EN", "A320", 1000, "trainee"},
		{"Sam Senior", "British", "EN", "B737", 3000, "senior"},
		{"Lena Junior", "Turkish", "TR,EN", "B737", 2000, "junior"},
	}
	for _, p := range pilots {
		if _, err := sqlxDB.Exec(`
			INSERT INTO pilots (name, nationality, languages, vehicle_type, max_distance_km, seniority)
			VALUES ($1,$2,$3,$4,$5,$6)`, p...); err != nil {
			return err
		}
	}

	attendants := [][]interface{}{
		{"Ayse Chief", "Turkish", "TR,EN", "chief", "A320,B737"},
		{"Mehmet Regular", "Turkish", "TR,EN", "regular", "A320"},
		{"Hans Regular", "German", "DE,EN", "regular", "A320,A321"},
		{"Julia Chef", "British", "EN", "chef", "B737,A321"},
	}
	for _, a := range attendants {
		if _, err := sqlxDB.Exec(`
			INSERT INTO attendants (name, nationality, languages, attendant_type, vehicle_types)
			VALUES ($1,$2,$3,$4,$5)`, a...); err != nil {
			return err
		}
	}

	passengers := []gormModels.Passenger{
		{FlightNo: "IT1234", Name: "Ali Passenger", Age: intPtr(30), Nationality: "Turkish", SeatType: "economy", GroupID: int64Ptr(1)},
		{FlightNo: "IT1234", Name: "Veli Passenger", Age: intPtr(28), Nationality: "Turkish", SeatType: "economy", GroupID: int64Ptr(1)},
		{FlightNo: "IT1234", Name: "Ayse Passenger", Age: intPtr(2), Nationality: "Turkish", SeatType: "economy", ParentID: int64Ptr(1)},
		{FlightNo: "IT1234", Name: "John Business", Age: intPtr(40), Nationality: "British", SeatType: "business", SeatNo: strPtr("1A")},
		{FlightNo: "IT2345", Name: "Passenger One", Age: intPtr(25), Nationality: "Turkish", SeatType: "economy"},
		{FlightNo: "IT2345", Name: "Passenger Two", Age: intPtr(27), Nationality: "German", SeatType: "economy"},
	}
	if err := ormDB.Create(&passengers).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := gormModels.User{Email: "admin@frms.local", PasswordHash: string(hash), Role: constants.RoleAdmin}
	return ormDB.Where(gormModels.User{Email: admin.Email}).FirstOrCreate(&admin).Error
}
