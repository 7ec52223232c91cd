package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/xavierca1/insura-microsite/internal/entity"
)

// AddressLookup is the slice of the lifecore client the cascade needs.
type AddressLookup interface {
	Provinces(ctx context.Context) ([]entity.Option, error)
	Cities(ctx context.Context, province string) ([]entity.Option, error)
	Districts(ctx context.Context, province, city string) ([]entity.Option, error)
	Subdistricts(ctx context.Context, province, city, district string) ([]entity.Option, error)
	LookupZip(ctx context.Context, postalCode string) (entity.ZipLookup, error)
}

// LevelState is the lifecycle of one dependent lookup level.
type LevelState int

const (
	LevelDisabled LevelState = iota // parent key missing
	LevelLoading                    // parent key present, fetch in flight
	LevelReady                      // options loaded
)

// AddressSelection holds the current form values of the cascade.
type AddressSelection struct {
	Province    string `json:"province"`
	City        string `json:"city"`
	District    string `json:"district"`
	Subdistrict string `json:"subdistrict"`
	PostalCode  string `json:"postal_code"`
}

type level struct {
	state   LevelState
	options []entity.Option
	seq     uint64
}

// AddressCascade resolves the strict dependency chain
// province -> city -> district -> subdistrict and reconciles it against the
// independent postal-code reverse lookup.
//
// Every fetch is tagged with a per-level monotonic token; a completion whose
// token is no longer current is discarded, so a superseded fetch can never
// apply a stale option list or selection. A zip-derived value overwrites a
// selection only when the zip returned one for that level, the value exists
// in the already-loaded option list (city and below) and it differs from the
// current value.
type AddressCascade struct {
	mu     sync.Mutex
	lookup AddressLookup

	sel          AddressSelection
	provinces    level
	cities       level
	districts    level
	subdistricts level

	zip    *entity.ZipLookup
	zipSeq uint64
}

func NewAddressCascade(lookup AddressLookup) *AddressCascade {
	return &AddressCascade{lookup: lookup}
}

// Load fetches the root province list. It has no parent dependency.
func (c *AddressCascade) Load(ctx context.Context) error {
	c.mu.Lock()
	c.provinces.state = LevelLoading
	c.provinces.seq++
	seq := c.provinces.seq
	c.mu.Unlock()

	opts, err := c.lookup.Provinces(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.provinces.seq {
		return nil
	}
	if err != nil {
		c.provinces.state = LevelDisabled
		return fmt.Errorf("load provinces: %w", err)
	}
	c.provinces.options = opts
	c.provinces.state = LevelReady
	return nil
}

// SetProvince records a manual province selection. Dependent selections and
// option lists are invalidated and the city list is refetched. A manual edit
// also forgets any pending zip result so the lookup cannot fight the user.
func (c *AddressCascade) SetProvince(ctx context.Context, code string) error {
	c.mu.Lock()
	c.zip = nil
	if c.sel.Province == code {
		c.mu.Unlock()
		return nil
	}
	c.sel.Province = code
	c.invalidateFrom(levelCity)
	if code == "" {
		c.mu.Unlock()
		return nil
	}
	return c.loadCities(ctx)
}

func (c *AddressCascade) SetCity(ctx context.Context, code string) error {
	c.mu.Lock()
	c.zip = nil
	if c.sel.City == code {
		c.mu.Unlock()
		return nil
	}
	c.sel.City = code
	c.invalidateFrom(levelDistrict)
	if code == "" || c.sel.Province == "" {
		c.mu.Unlock()
		return nil
	}
	return c.loadDistricts(ctx)
}

func (c *AddressCascade) SetDistrict(ctx context.Context, code string) error {
	c.mu.Lock()
	c.zip = nil
	if c.sel.District == code {
		c.mu.Unlock()
		return nil
	}
	c.sel.District = code
	c.invalidateFrom(levelSubdistrict)
	if code == "" || c.sel.Province == "" || c.sel.City == "" {
		c.mu.Unlock()
		return nil
	}
	return c.loadSubdistricts(ctx)
}

func (c *AddressCascade) SetSubdistrict(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zip = nil
	c.sel.Subdistrict = code
}

// SetPostalCode stores the postal code and, when it is exactly five
// characters, fires the reverse lookup and reconciles the result into the
// cascade.
func (c *AddressCascade) SetPostalCode(ctx context.Context, code string) error {
	c.mu.Lock()
	c.sel.PostalCode = code
	if len(code) != 5 {
		c.mu.Unlock()
		return nil
	}
	c.zipSeq++
	seq := c.zipSeq
	c.mu.Unlock()

	res, err := c.lookup.LookupZip(ctx, code)

	c.mu.Lock()
	if seq != c.zipSeq {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("zip lookup: %w", err)
	}
	c.zip = &res
	return c.applyZip(ctx)
}

// Selection returns the current form values.
func (c *AddressCascade) Selection() AddressSelection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// LevelSnapshot is the observable state of one cascade level.
type LevelSnapshot struct {
	State   LevelState      `json:"state"`
	Options []entity.Option `json:"options"`
}

type CascadeSnapshot struct {
	Selection    AddressSelection `json:"selection"`
	Provinces    LevelSnapshot    `json:"provinces"`
	Cities       LevelSnapshot    `json:"cities"`
	Districts    LevelSnapshot    `json:"districts"`
	Subdistricts LevelSnapshot    `json:"subdistricts"`
}

func (c *AddressCascade) Snapshot() CascadeSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CascadeSnapshot{
		Selection:    c.sel,
		Provinces:    LevelSnapshot{c.provinces.state, c.provinces.options},
		Cities:       LevelSnapshot{c.cities.state, c.cities.options},
		Districts:    LevelSnapshot{c.districts.state, c.districts.options},
		Subdistricts: LevelSnapshot{c.subdistricts.state, c.subdistricts.options},
	}
}

type cascadeLevel int

const (
	levelCity cascadeLevel = iota
	levelDistrict
	levelSubdistrict
)

// invalidateFrom clears selections and option lists from the given level
// down and bumps their tokens so in-flight fetches land dead. Lock held.
func (c *AddressCascade) invalidateFrom(from cascadeLevel) {
	if from <= levelCity {
		c.sel.City = ""
		c.cities = level{seq: c.cities.seq + 1}
	}
	if from <= levelDistrict {
		c.sel.District = ""
		c.districts = level{seq: c.districts.seq + 1}
	}
	c.sel.Subdistrict = ""
	c.subdistricts = level{seq: c.subdistricts.seq + 1}
}

// loadCities fetches the city list for the current province. Called with
// the lock held; releases it before returning.
func (c *AddressCascade) loadCities(ctx context.Context) error {
	c.cities.state = LevelLoading
	c.cities.seq++
	seq := c.cities.seq
	province := c.sel.Province
	c.mu.Unlock()

	opts, err := c.lookup.Cities(ctx, province)

	c.mu.Lock()
	if seq != c.cities.seq {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.cities.state = LevelDisabled
		c.mu.Unlock()
		return fmt.Errorf("load cities: %w", err)
	}
	c.cities.options = opts
	c.cities.state = LevelReady
	return c.applyZip(ctx)
}

func (c *AddressCascade) loadDistricts(ctx context.Context) error {
	c.districts.state = LevelLoading
	c.districts.seq++
	seq := c.districts.seq
	province, city := c.sel.Province, c.sel.City
	c.mu.Unlock()

	opts, err := c.lookup.Districts(ctx, province, city)

	c.mu.Lock()
	if seq != c.districts.seq {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.districts.state = LevelDisabled
		c.mu.Unlock()
		return fmt.Errorf("load districts: %w", err)
	}
	c.districts.options = opts
	c.districts.state = LevelReady
	return c.applyZip(ctx)
}

func (c *AddressCascade) loadSubdistricts(ctx context.Context) error {
	c.subdistricts.state = LevelLoading
	c.subdistricts.seq++
	seq := c.subdistricts.seq
	province, city, district := c.sel.Province, c.sel.City, c.sel.District
	c.mu.Unlock()

	opts, err := c.lookup.Subdistricts(ctx, province, city, district)

	c.mu.Lock()
	if seq != c.subdistricts.seq {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.subdistricts.state = LevelDisabled
		c.mu.Unlock()
		return fmt.Errorf("load subdistricts: %w", err)
	}
	c.subdistricts.options = opts
	c.subdistricts.state = LevelReady
	return c.applyZip(ctx)
}

// applyZip reconciles the pending zip result with the current selections.
// Exactly one level is written per pass; writing a level refetches its
// child list, whose completion re-enters applyZip, so deeper levels are
// applied as soon as their option lists load and pass the membership guard.
// The differs-from-current guard makes the recursion terminate. Called with
// the lock held; releases it before returning.
func (c *AddressCascade) applyZip(ctx context.Context) error {
	if c.zip == nil {
		c.mu.Unlock()
		return nil
	}

	if cand := firstCode(c.zip.Province); cand != "" && cand != c.sel.Province {
		c.sel.Province = cand
		c.invalidateFrom(levelCity)
		return c.loadCities(ctx)
	}

	if cand := firstCode(c.zip.City); cand != "" && cand != c.sel.City &&
		c.cities.state == LevelReady && entity.ContainsCode(c.cities.options, cand) {
		c.sel.City = cand
		c.invalidateFrom(levelDistrict)
		return c.loadDistricts(ctx)
	}

	if cand := firstCode(c.zip.District); cand != "" && cand != c.sel.District &&
		c.districts.state == LevelReady && entity.ContainsCode(c.districts.options, cand) {
		c.sel.District = cand
		c.invalidateFrom(levelSubdistrict)
		return c.loadSubdistricts(ctx)
	}

	if cand := firstCode(c.zip.Subdistrict); cand != "" && cand != c.sel.Subdistrict &&
		c.subdistricts.state == LevelReady && entity.ContainsCode(c.subdistricts.options, cand) {
		c.sel.Subdistrict = cand
	}

	c.mu.Unlock()
	return nil
}

func firstCode(options []entity.Option) string {
	if len(options) == 0 {
		return ""
	}
	return options[0].Code
}
