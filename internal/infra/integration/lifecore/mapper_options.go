package lifecore

import "github.com/xavierca1/insura-microsite/internal/entity"

// toOption builds the canonical {code, name} pair. Name falls back to the
// code when it stringifies empty; an empty code drops the record entirely.
// The three-tier fallback (name, code, drop) guarantees every surviving
// option has a non-empty name.
func toOption(code, name any) *entity.Option {
	c := toString(code)
	if c == "" {
		return nil
	}
	n := toString(name)
	if n == "" {
		n = c
	}
	return &entity.Option{Code: c, Name: n}
}

// MapOptionList converts heterogeneous reference-data records into options,
// dropping invalid entries. Input order is preserved.
func MapOptionList(data any, codeKey, nameKey string) []entity.Option {
	records := ensureArray(data)
	out := make([]entity.Option, 0, len(records))
	for _, rec := range records {
		if opt := toOption(field(rec, codeKey), field(rec, nameKey)); opt != nil {
			out = append(out, *opt)
		}
	}
	return out
}

// MapBranchOptions selects the branch display name through the
// desc_item, short_desc, long_desc chain before the usual code fallback.
func MapBranchOptions(data any) []entity.Option {
	records := ensureArray(data)
	out := make([]entity.Option, 0, len(records))
	for _, rec := range records {
		name := toString(field(rec, "desc_item"))
		if name == "" {
			name = toString(field(rec, "short_desc"))
		}
		if name == "" {
			name = toString(field(rec, "long_desc"))
		}
		if opt := toOption(field(rec, "code_item"), name); opt != nil {
			out = append(out, *opt)
		}
	}
	return out
}

func MapProvinceOptions(data any) []entity.Option {
	return MapOptionList(data, "province_code", "province_name")
}

func MapCityOptions(data any) []entity.Option {
	return MapOptionList(data, "city_code", "city_name")
}

func MapDistrictOptions(data any) []entity.Option {
	return MapOptionList(data, "district_code", "district_name")
}

func MapSubdistrictOptions(data any) []entity.Option {
	return MapOptionList(data, "subdistrict_code", "subdistrict_name")
}
