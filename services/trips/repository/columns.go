package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

var tripColumnNames = []string{
	"id", "ticket_code", "trip_code", "origin_id", "destination_id",
	"origin_city", "destination_city", "car_name", "service_name", "starts_at",
	"status", "secure_token", "passenger_id", "driver_id", "location_id",
	"passenger_sms_sent", "admin_approved", "created_at", "updated_at",
}

var locationColumnNames = []string{
	"id", "trip_id", "passenger_id", "latitude", "longitude", "text_address",
	"description", "phone_number", "geohash", "created_at", "updated_at",
}

func columns(names []string, alias string) string {
	if alias == "" {
		return strings.Join(names, ", ")
	}
	prefixed := make([]string, len(names))
	for i, name := range names {
		prefixed[i] = alias + "." + name
	}
	return strings.Join(prefixed, ", ")
}

const detailJoins = `
	FROM trips t
	JOIN passengers p ON p.id = t.passenger_id
	LEFT JOIN drivers d ON d.id = t.driver_id
	LEFT JOIN locations l ON l.trip_id = t.id`

var detailSelect = `SELECT ` + columns(tripColumnNames, "t") + `,
	p.first_name AS p_first_name, p.last_name AS p_last_name, p.phone_number AS p_phone_number,
	p.national_code AS p_national_code, p.created_at AS p_created_at, p.updated_at AS p_updated_at,
	d.first_name AS d_first_name, d.last_name AS d_last_name, d.phone_number AS d_phone_number,
	d.car_name AS d_car_name, d.created_at AS d_created_at, d.updated_at AS d_updated_at,
	l.id AS l_id, l.latitude AS l_latitude, l.longitude AS l_longitude, l.text_address AS l_text_address,
	l.description AS l_description, l.phone_number AS l_phone_number, l.geohash AS l_geohash,
	l.created_at AS l_created_at, l.updated_at AS l_updated_at` + detailJoins

// tripDetailRow is one row of detailSelect. Driver and location columns are
// null when nothing is linked.
type tripDetailRow struct {
	models.Trip

	PassengerFirstName    string    `db:"p_first_name"`
	PassengerLastName     string    `db:"p_last_name"`
	PassengerPhoneNumber  string    `db:"p_phone_number"`
	PassengerNationalCode *string   `db:"p_national_code"`
	PassengerCreatedAt    time.Time `db:"p_created_at"`
	PassengerUpdatedAt    time.Time `db:"p_updated_at"`

	DriverFirstName   sql.NullString `db:"d_first_name"`
	DriverLastName    sql.NullString `db:"d_last_name"`
	DriverPhoneNumber sql.NullString `db:"d_phone_number"`
	DriverCarName     sql.NullString `db:"d_car_name"`
	DriverCreatedAt   sql.NullTime   `db:"d_created_at"`
	DriverUpdatedAt   sql.NullTime   `db:"d_updated_at"`

	JoinedLocationID    uuid.NullUUID   `db:"l_id"`
	LocationLatitude    sql.NullFloat64 `db:"l_latitude"`
	LocationLongitude   sql.NullFloat64 `db:"l_longitude"`
	LocationTextAddress *string         `db:"l_text_address"`
	LocationDescription *string         `db:"l_description"`
	LocationPhoneNumber *string         `db:"l_phone_number"`
	LocationGeohash     sql.NullString  `db:"l_geohash"`
	LocationCreatedAt   sql.NullTime    `db:"l_created_at"`
	LocationUpdatedAt   sql.NullTime    `db:"l_updated_at"`
}

func (row *tripDetailRow) detail() *models.TripDetail {
	detail := &models.TripDetail{
		Trip: row.Trip,
		Passenger: &models.Passenger{
			ID:           row.PassengerID,
			FirstName:    row.PassengerFirstName,
			LastName:     row.PassengerLastName,
			PhoneNumber:  row.PassengerPhoneNumber,
			NationalCode: row.PassengerNationalCode,
			CreatedAt:    row.PassengerCreatedAt,
			UpdatedAt:    row.PassengerUpdatedAt,
		},
	}

	if row.DriverID != nil && row.DriverPhoneNumber.Valid {
		detail.Driver = &models.Driver{
			ID:          *row.DriverID,
			FirstName:   row.DriverFirstName.String,
			LastName:    row.DriverLastName.String,
			PhoneNumber: row.DriverPhoneNumber.String,
			CarName:     row.DriverCarName.String,
			CreatedAt:   row.DriverCreatedAt.Time,
			UpdatedAt:   row.DriverUpdatedAt.Time,
		}
	}

	if row.JoinedLocationID.Valid {
		detail.Location = &models.Location{
			ID:          row.JoinedLocationID.UUID,
			TripID:      row.ID,
			PassengerID: row.PassengerID,
			Latitude:    row.LocationLatitude.Float64,
			Longitude:   row.LocationLongitude.Float64,
			TextAddress: row.LocationTextAddress,
			Description: row.LocationDescription,
			PhoneNumber: row.LocationPhoneNumber,
			Geohash:     row.LocationGeohash.String,
			CreatedAt:   row.LocationCreatedAt.Time,
			UpdatedAt:   row.LocationUpdatedAt.Time,
		}
	}

	return detail
}

func details(rows []tripDetailRow) []*models.TripDetail {
	result := make([]*models.TripDetail, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].detail())
	}
	return result
}
