package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Profile is a named set of recognizer thresholds. Distances are in pixels,
// debounce values in frames.
type Profile struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	PinchThreshold    float64   `json:"pinch_threshold"`
	ScrollSensitivity float64   `json:"scroll_sensitivity"`
	ZoomSensitivity   float64   `json:"zoom_sensitivity"`
	DebounceTime      int       `json:"debounce_time"`
	DebounceTimeShort int       `json:"debounce_time_short"`
	DebounceTimeLong  int       `json:"debounce_time_long"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProfileRepository provides CRUD operations for calibration profiles.
type ProfileRepository struct {
	db *sql.DB
}

// Profiles returns the profile repository for this store.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{db: s.db}
}

// Create inserts a new profile. A missing ID is generated.
func (r *ProfileRepository) Create(p *Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO profiles (id, name, pinch_threshold, scroll_sensitivity, zoom_sensitivity,
		                       debounce_time, debounce_time_short, debounce_time_long, active,
		                       created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.PinchThreshold, p.ScrollSensitivity, p.ZoomSensitivity,
		p.DebounceTime, p.DebounceTimeShort, p.DebounceTimeLong, boolToInt(p.Active),
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(id string) (*Profile, error) {
	return r.scanOne(r.db.QueryRow(selectProfile+` WHERE id = ?`, id))
}

// GetByName retrieves a profile by its name.
func (r *ProfileRepository) GetByName(name string) (*Profile, error) {
	return r.scanOne(r.db.QueryRow(selectProfile+` WHERE name = ?`, name))
}

// GetActive retrieves the currently active profile, or ErrNotFound when no
// profile has been activated.
func (r *ProfileRepository) GetActive() (*Profile, error) {
	return r.scanOne(r.db.QueryRow(selectProfile + ` WHERE active = 1 LIMIT 1`))
}

// List retrieves all profiles ordered by creation time.
func (r *ProfileRepository) List() ([]*Profile, error) {
	rows, err := r.db.Query(selectProfile + ` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update updates an existing profile.
func (r *ProfileRepository) Update(p *Profile) error {
	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE profiles SET name = ?, pinch_threshold = ?, scroll_sensitivity = ?,
		        zoom_sensitivity = ?, debounce_time = ?, debounce_time_short = ?,
		        debounce_time_long = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.PinchThreshold, p.ScrollSensitivity, p.ZoomSensitivity,
		p.DebounceTime, p.DebounceTimeShort, p.DebounceTimeLong, boolToInt(p.Active),
		p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// SetActive marks one profile active and clears the flag on every other.
func (r *ProfileRepository) SetActive(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE profiles SET active = 0 WHERE active = 1`); err != nil {
		return err
	}

	result, err := tx.Exec(`UPDATE profiles SET active = 1, updated_at = ? WHERE id = ?`,
		time.Now(), id)
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a profile by its ID.
func (r *ProfileRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

const selectProfile = `SELECT id, name, pinch_threshold, scroll_sensitivity, zoom_sensitivity,
       debounce_time, debounce_time_short, debounce_time_long, active, created_at, updated_at
  FROM profiles`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*Profile, error) {
	p := &Profile{}
	var active int

	err := row.Scan(&p.ID, &p.Name, &p.PinchThreshold, &p.ScrollSensitivity,
		&p.ZoomSensitivity, &p.DebounceTime, &p.DebounceTimeShort, &p.DebounceTimeLong,
		&active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.Active = active != 0
	return p, nil
}

func (r *ProfileRepository) scanOne(row *sql.Row) (*Profile, error) {
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
