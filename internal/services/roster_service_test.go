package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"flightops/frms/internal/db"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/models/entities"
	gormModels "flightops/frms/internal/models/gorm"
)

func iptr(n int) *int       { return &n }
func i64ptr(n int64) *int64 { return &n }
func sptr(s string) *string { return &s }

type mockFlightSource struct {
	flights map[string]*entities.Flight
}

func (m *mockFlightSource) FindByFlightNo(_ context.Context, flightNo string) (*entities.Flight, error) {
	if f, ok := m.flights[flightNo]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockCrewSource struct {
	pilots     []entities.Pilot
	attendants []entities.Attendant
}

func (m *mockCrewSource) PilotsForFlight(_ context.Context, vehicleType string, distanceKm int) ([]entities.Pilot, error) {
	var pool []entities.Pilot
	for _, p := range m.pilots {
		if p.VehicleType == vehicleType && p.MaxDistanceKm >= distanceKm {
			pool = append(pool, p)
		}
	}
	return pool, nil
}

func (m *mockCrewSource) ListAttendants(_ context.Context) ([]entities.Attendant, error) {
	return m.attendants, nil
}

func setupTestORM(t *testing.T) *gorm.DB {
	t.Helper()
	orm, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(orm))
	return orm
}

func testFlight(flightNo, vehicleType string) *entities.Flight {
	return &entities.Flight{
		ID:          1,
		FlightNo:    flightNo,
		DateTime:    "2026-09-01 08:30",
		DistanceKm:  1200,
		Source:      "IST",
		Destination: "FRA",
		VehicleType: vehicleType,
	}
}

func testCrew() *mockCrewSource {
	pilots := []entities.Pilot{
		{ID: 1, Name: "Vera", VehicleType: "A320", MaxDistanceKm: 6000, Seniority: entities.SenioritySenior},
		{ID: 2, Name: "Omar", VehicleType: "A320", MaxDistanceKm: 6000, Seniority: entities.SenioritySenior},
		{ID: 3, Name: "Lena", VehicleType: "A320", MaxDistanceKm: 4000, Seniority: entities.SeniorityJunior},
		{ID: 4, Name: "Timo", VehicleType: "A320", MaxDistanceKm: 3000, Seniority: entities.SeniorityTrainee},
		{ID: 5, Name: "Rex", VehicleType: "B777", MaxDistanceKm: 12000, Seniority: entities.SenioritySenior},
	}
	var attendants []entities.Attendant
	for i := int64(1); i <= 7; i++ {
		attendants = append(attendants, entities.Attendant{
			ID: i, Name: "Crew", AttendantType: "chief", VehicleTypes: "A320,B737",
		})
	}
	attendants = append(attendants, entities.Attendant{
		ID: 8, Name: "Wide", AttendantType: "chief", VehicleTypes: "B777",
	})
	return &mockCrewSource{pilots: pilots, attendants: attendants}
}

func setupRosterService(t *testing.T) (*RosterService, *gorm.DB) {
	t.Helper()
	orm := setupTestORM(t)
	flights := &mockFlightSource{flights: map[string]*entities.Flight{
		"TK1001": testFlight("TK1001", "A320"),
	}}
	svc := NewRosterService(
		flights,
		testCrew(),
		repositories.NewPassengerRepository(orm),
		repositories.NewRosterRepository(orm),
		nil, nil, nil,
	)
	return svc, orm
}

func seedPassengers(t *testing.T, orm *gorm.DB, rows ...*gormModels.Passenger) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, orm.Create(row).Error)
	}
}

func TestRosterServiceGenerate(t *testing.T) {
	svc, orm := setupRosterService(t)
	seedPassengers(t, orm,
		&gormModels.Passenger{FlightNo: "TK1001", Name: "Baby", Age: iptr(1), SeatType: "economy", GroupID: i64ptr(1), ParentID: i64ptr(2)},
		&gormModels.Passenger{FlightNo: "TK1001", Name: "Mara", Age: iptr(29), SeatType: "economy", GroupID: i64ptr(1)},
		&gormModels.Passenger{FlightNo: "TK1001", Name: "Ivan", Age: iptr(31), SeatType: "economy", GroupID: i64ptr(1)},
		&gormModels.Passenger{FlightNo: "TK1001", Name: "Suit", Age: iptr(52), SeatType: "business"},
		&gormModels.Passenger{FlightNo: "TK1001", Name: "Held", Age: iptr(40), SeatType: "economy", SeatNo: sptr("10D")},
	)

	view, err := svc.Generate(context.Background(), "TK1001")
	require.NoError(t, err)

	assert.NotZero(t, view.RosterID)
	assert.Equal(t, 0, view.Unseated)

	// First senior, first junior, first trainee from the certified pool.
	require.Len(t, view.Roster.Pilots, 3)
	assert.Equal(t, "Vera", view.Roster.Pilots[0].Name)
	assert.Equal(t, entities.SeniorityJunior, view.Roster.Pilots[1].Seniority)
	assert.Equal(t, entities.SeniorityTrainee, view.Roster.Pilots[2].Seniority)

	// Seven attendants are certified for the A320; the pick caps at six.
	assert.Len(t, view.Roster.Cabin, 6)

	byName := map[string]string{}
	for _, p := range view.Roster.Passengers {
		byName[p.Name] = p.SeatNo
	}
	assert.Empty(t, byName["Baby"])
	assert.Equal(t, "4A", byName["Mara"])
	assert.Equal(t, "4B", byName["Ivan"])
	assert.Equal(t, "1A", byName["Suit"])
	assert.Equal(t, "10D", byName["Held"])

	count, err := repositories.NewRosterRepository(orm).CountByFlight(context.Background(), "TK1001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRosterServiceGenerateUnknownFlight(t *testing.T) {
	svc, _ := setupRosterService(t)

	_, err := svc.Generate(context.Background(), "XX0000")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestRosterServiceGenerateAppendsSnapshots(t *testing.T) {
	svc, orm := setupRosterService(t)
	seedPassengers(t, orm,
		&gormModels.Passenger{FlightNo: "TK1001", Name: "Solo", Age: iptr(33), SeatType: "economy"},
	)

	first, err := svc.Generate(context.Background(), "TK1001")
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), "TK1001")
	require.NoError(t, err)

	assert.NotEqual(t, first.RosterID, second.RosterID)

	count, err := repositories.NewRosterRepository(orm).CountByFlight(context.Background(), "TK1001")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRosterServiceViewGeneratesFirstSnapshot(t *testing.T) {
	svc, orm := setupRosterService(t)
	seedPassengers(t, orm,
		&gormModels.Passenger{FlightNo: "TK1001", Name: "Solo", Age: iptr(33), SeatType: "economy"},
	)

	view, err := svc.View(context.Background(), "TK1001")
	require.NoError(t, err)
	require.NotZero(t, view.RosterID)

	again, err := svc.View(context.Background(), "TK1001")
	require.NoError(t, err)
	assert.Equal(t, view.RosterID, again.RosterID)

	count, err := repositories.NewRosterRepository(orm).CountByFlight(context.Background(), "TK1001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRosterServiceExport(t *testing.T) {
	svc, orm := setupRosterService(t)
	seedPassengers(t, orm,
		&gormModels.Passenger{FlightNo: "TK1001", Name: "Solo", Age: iptr(33), SeatType: "economy"},
	)

	_, err := svc.Generate(context.Background(), "TK1001")
	require.NoError(t, err)

	raw, err := svc.Export(context.Background(), "TK1001")
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.True(t, strings.Contains(string(payload["flight"]), "TK1001"))
	assert.Contains(t, payload, "pilots")
	assert.Contains(t, payload, "passengers")
}

func TestRosterServiceExportNoSnapshot(t *testing.T) {
	svc, _ := setupRosterService(t)

	_, err := svc.Export(context.Background(), "TK1001")
	assert.ErrorIs(t, err, repositories.ErrNoRoster)
}
