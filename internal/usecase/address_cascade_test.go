package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/insura-microsite/internal/entity"
)

// fakeAddressLookup serves canned reference data keyed by parent code and
// counts the fetches it receives.
type fakeAddressLookup struct {
	provinces    []entity.Option
	cities       map[string][]entity.Option
	districts    map[string][]entity.Option
	subdistricts map[string][]entity.Option
	zips         map[string]entity.ZipLookup

	cityCalls   []string
	onCities    func(province string)
	provinceErr error
}

func (f *fakeAddressLookup) Provinces(ctx context.Context) ([]entity.Option, error) {
	if f.provinceErr != nil {
		return nil, f.provinceErr
	}
	return f.provinces, nil
}

func (f *fakeAddressLookup) Cities(ctx context.Context, province string) ([]entity.Option, error) {
	f.cityCalls = append(f.cityCalls, province)
	if f.onCities != nil {
		hook := f.onCities
		f.onCities = nil
		hook(province)
	}
	return f.cities[province], nil
}

func (f *fakeAddressLookup) Districts(ctx context.Context, province, city string) ([]entity.Option, error) {
	return f.districts[city], nil
}

func (f *fakeAddressLookup) Subdistricts(ctx context.Context, province, city, district string) ([]entity.Option, error) {
	return f.subdistricts[district], nil
}

func (f *fakeAddressLookup) LookupZip(ctx context.Context, postalCode string) (entity.ZipLookup, error) {
	return f.zips[postalCode], nil
}

func jakartaLookup() *fakeAddressLookup {
	return &fakeAddressLookup{
		provinces: []entity.Option{{Code: "31", Name: "DKI Jakarta"}, {Code: "32", Name: "Jawa Barat"}},
		cities: map[string][]entity.Option{
			"31": {{Code: "3171", Name: "Jakarta Selatan"}, {Code: "3172", Name: "Jakarta Timur"}},
			"32": {{Code: "3273", Name: "Bandung"}},
		},
		districts: map[string][]entity.Option{
			"3171": {{Code: "317101", Name: "Cilandak"}, {Code: "317102", Name: "Kebayoran Baru"}},
		},
		subdistricts: map[string][]entity.Option{
			"317101": {{Code: "31710101", Name: "Cilandak Barat"}},
		},
		zips: map[string]entity.ZipLookup{
			"12430": {
				Province:    []entity.Option{{Code: "31", Name: "DKI Jakarta"}},
				City:        []entity.Option{{Code: "3171", Name: "Jakarta Selatan"}},
				District:    []entity.Option{{Code: "317101", Name: "Cilandak"}},
				Subdistrict: []entity.Option{{Code: "31710101", Name: "Cilandak Barat"}},
			},
		},
	}
}

func TestCascadeLoadEnablesOnlyProvinces(t *testing.T) {
	c := NewAddressCascade(jakartaLookup())
	require.NoError(t, c.Load(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, LevelReady, snap.Provinces.State)
	assert.Len(t, snap.Provinces.Options, 2)
	assert.Equal(t, LevelDisabled, snap.Cities.State)
	assert.Equal(t, LevelDisabled, snap.Districts.State)
	assert.Equal(t, LevelDisabled, snap.Subdistricts.State)
}

func TestCascadeLoadFailureLeavesProvincesDisabled(t *testing.T) {
	lookup := jakartaLookup()
	lookup.provinceErr = errors.New("upstream down")
	c := NewAddressCascade(lookup)

	err := c.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, LevelDisabled, c.Snapshot().Provinces.State)
}

func TestCascadeManualChainSelection(t *testing.T) {
	c := NewAddressCascade(jakartaLookup())
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.SetProvince(ctx, "31"))
	snap := c.Snapshot()
	assert.Equal(t, LevelReady, snap.Cities.State)
	assert.Len(t, snap.Cities.Options, 2)
	assert.Equal(t, LevelDisabled, snap.Districts.State)

	require.NoError(t, c.SetCity(ctx, "3171"))
	require.NoError(t, c.SetDistrict(ctx, "317101"))
	c.SetSubdistrict("31710101")

	sel := c.Selection()
	assert.Equal(t, "31", sel.Province)
	assert.Equal(t, "3171", sel.City)
	assert.Equal(t, "317101", sel.District)
	assert.Equal(t, "31710101", sel.Subdistrict)
}

func TestCascadeProvinceChangeInvalidatesDescendants(t *testing.T) {
	c := NewAddressCascade(jakartaLookup())
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))
	require.NoError(t, c.SetProvince(ctx, "31"))
	require.NoError(t, c.SetCity(ctx, "3171"))
	require.NoError(t, c.SetDistrict(ctx, "317101"))
	c.SetSubdistrict("31710101")

	require.NoError(t, c.SetProvince(ctx, "32"))

	sel := c.Selection()
	assert.Equal(t, "32", sel.Province)
	assert.Empty(t, sel.City)
	assert.Empty(t, sel.District)
	assert.Empty(t, sel.Subdistrict)

	snap := c.Snapshot()
	assert.Equal(t, LevelReady, snap.Cities.State)
	assert.Equal(t, "3273", snap.Cities.Options[0].Code)
	assert.Equal(t, LevelDisabled, snap.Districts.State)
	assert.Equal(t, LevelDisabled, snap.Subdistricts.State)
}

func TestCascadeRedundantSetProvinceSkipsRefetch(t *testing.T) {
	lookup := jakartaLookup()
	c := NewAddressCascade(lookup)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.SetProvince(ctx, "31"))
	require.NoError(t, c.SetProvince(ctx, "31"))
	assert.Equal(t, []string{"31"}, lookup.cityCalls)
}

func TestCascadeZipResolvesFullChain(t *testing.T) {
	c := NewAddressCascade(jakartaLookup())
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.SetPostalCode(ctx, "12430"))

	sel := c.Selection()
	assert.Equal(t, "31", sel.Province)
	assert.Equal(t, "3171", sel.City)
	assert.Equal(t, "317101", sel.District)
	assert.Equal(t, "31710101", sel.Subdistrict)
	assert.Equal(t, "12430", sel.PostalCode)

	snap := c.Snapshot()
	assert.Equal(t, LevelReady, snap.Subdistricts.State)
}

func TestCascadeShortPostalCodeDoesNotLookup(t *testing.T) {
	c := NewAddressCascade(jakartaLookup())
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.SetPostalCode(ctx, "124"))

	sel := c.Selection()
	assert.Equal(t, "124", sel.PostalCode)
	assert.Empty(t, sel.Province)
}

func TestCascadeZipMembershipGuard(t *testing.T) {
	lookup := jakartaLookup()
	// the zip names a district that the loaded list does not contain
	lookup.zips["12430"] = entity.ZipLookup{
		Province: []entity.Option{{Code: "31"}},
		City:     []entity.Option{{Code: "3171"}},
		District: []entity.Option{{Code: "999999", Name: "Unknown"}},
	}
	c := NewAddressCascade(lookup)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.SetPostalCode(ctx, "12430"))

	sel := c.Selection()
	assert.Equal(t, "31", sel.Province)
	assert.Equal(t, "3171", sel.City)
	assert.Empty(t, sel.District)
}

func TestCascadeManualEditForgetsPendingZip(t *testing.T) {
	c := NewAddressCascade(jakartaLookup())
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))
	require.NoError(t, c.SetPostalCode(ctx, "12430"))
	require.Equal(t, "3171", c.Selection().City)

	// user overrides the zip-derived city; the zip result must not fight back
	require.NoError(t, c.SetCity(ctx, "3172"))
	assert.Equal(t, "3172", c.Selection().City)
	assert.Empty(t, c.Selection().District)
}

func TestCascadeStaleCityFetchIsDiscarded(t *testing.T) {
	lookup := jakartaLookup()
	c := NewAddressCascade(lookup)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	// while the city fetch for 31 is in flight, the user switches to 32;
	// the in-flight completion carries a superseded token and must land dead
	lookup.onCities = func(province string) {
		if province == "31" {
			require.NoError(t, c.SetProvince(ctx, "32"))
		}
	}
	require.NoError(t, c.SetProvince(ctx, "31"))

	sel := c.Selection()
	assert.Equal(t, "32", sel.Province)
	snap := c.Snapshot()
	assert.Equal(t, LevelReady, snap.Cities.State)
	require.Len(t, snap.Cities.Options, 1)
	assert.Equal(t, "3273", snap.Cities.Options[0].Code)
}
