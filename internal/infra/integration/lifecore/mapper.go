package lifecore

import (
	"strings"

	"github.com/xavierca1/insura-microsite/internal/entity"
)

// Mappers convert a raw envelope payload into a stable domain shape. They
// are pure and total: any input, including null and malformed nesting,
// resolves to a typed default instead of a panic.

func MapProductList(data any) []entity.ProductListItem {
	items := ensureArray(data)
	out := make([]entity.ProductListItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.ProductListItem{
			Code:        toString(field(item, "product_code")),
			Name:        toString(field(item, "product_name")),
			Slug:        toString(field(item, "slug")),
			Category:    toString(field(item, "category")),
			Description: toString(field(item, "description")),
			ImageURL:    toString(field(item, "image_url")),
			MinPremium:  toNumber(field(item, "min_premium")),
		})
	}
	return out
}

// MapProductDetail takes the first element of the array-wrapped detail
// payload. A payload without elements yields nil, which callers must treat
// differently from a valid-but-empty detail.
func MapProductDetail(data any) *entity.ProductDetail {
	wrapped := ensureArray(data)
	if len(wrapped) == 0 {
		return nil
	}
	raw := wrapped[0]
	return &entity.ProductDetail{
		Code:        toString(field(raw, "product_code")),
		Name:        toString(field(raw, "product_name")),
		Slug:        toString(field(raw, "slug")),
		Category:    toString(field(raw, "category")),
		Description: toString(field(raw, "description")),
		ImageURL:    toString(field(raw, "image_url")),
		RiplayURL:   toString(field(raw, "riplay_url")),
		Terms:       mapTerms(field(raw, "terms")),
		Packages:    mapPackages(field(raw, "packages")),
	}
}

func mapTerms(data any) []entity.ProductTerm {
	items := ensureArray(data)
	out := make([]entity.ProductTerm, 0, len(items))
	for _, item := range items {
		out = append(out, entity.ProductTerm{
			Code:   toString(field(item, "term_code")),
			Label:  toString(field(item, "term_label")),
			Months: int(toNumber(field(item, "months"))),
		})
	}
	return out
}

func mapPackages(data any) []entity.ProductPackage {
	items := ensureArray(data)
	out := make([]entity.ProductPackage, 0, len(items))
	for _, item := range items {
		out = append(out, entity.ProductPackage{
			Code:     toString(field(item, "package_code")),
			Name:     toString(field(item, "package_name")),
			Premium:  toNumber(field(item, "premium")),
			Benefits: mapBenefits(field(item, "benefits")),
		})
	}
	return out
}

func mapBenefits(data any) []entity.PackageBenefit {
	items := ensureArray(data)
	out := make([]entity.PackageBenefit, 0, len(items))
	for _, item := range items {
		out = append(out, entity.PackageBenefit{
			Code:     toString(field(item, "benefit_code")),
			Name:     toString(field(item, "benefit_name")),
			Coverage: toNumber(field(item, "coverage")),
			// optional: serialized with omitempty so an absent note stays
			// an absent key downstream
			Notes: toString(field(item, "notes")),
		})
	}
	return out
}

func MapComputePremium(data any) entity.Premium {
	return entity.Premium{
		BasePremium:  toNumber(field(data, "base_premium")),
		AdminFee:     toNumber(field(data, "admin_fee")),
		TotalPremium: toNumber(field(data, "total_premium")),
		Currency:     toString(field(data, "currency")),
		Frequency:    toString(field(data, "frequency")),
	}
}

func MapZipLookup(data any) entity.ZipLookup {
	return entity.ZipLookup{
		Province:    MapOptionList(field(data, "province"), "id", "name"),
		City:        MapOptionList(field(data, "city"), "id", "name"),
		District:    MapOptionList(field(data, "district"), "id", "name"),
		Subdistrict: MapOptionList(field(data, "subdistrict"), "id", "name"),
	}
}

func MapDocumentResponse(data any) entity.Document {
	return entity.Document{
		URL:      toString(field(data, "url")),
		FileName: toString(field(data, "file_name")),
		MimeType: toString(field(data, "mime_type")),
	}
}

func MapCreateSPAJResponse(data any) entity.SPAJ {
	return entity.SPAJ{
		Number:    toString(field(data, "spaj_no")),
		CreatedAt: toString(field(data, "created_at")),
	}
}

// MapProposalStatus succeeds only on a literal uppercase "CLEAN". The
// comparison is not trimmed: "CLEAN " upstream is a failure.
func MapProposalStatus(data any) entity.ProposalStatus {
	status := strings.ToUpper(toString(field(data, "status")))
	return entity.ProposalStatus{Success: status == "CLEAN"}
}

func MapPaymentResponse(data any) entity.Payment {
	return entity.Payment{
		Method:        toString(field(data, "method")),
		VirtualAccNo:  toString(field(data, "virtual_account_no")),
		BankCode:      toString(field(data, "bank_code")),
		Amount:        toNumber(field(data, "amount")),
		Currency:      toString(field(data, "currency")),
		ExpiresAt:     toString(field(data, "expires_at")),
		PaymentURL:    toString(field(data, "payment_url")),
		PaymentStatus: toString(field(data, "payment_status")),
	}
}

func MapEligibility(data any) entity.Eligibility {
	return entity.Eligibility{
		Decision: toString(field(data, "decisions")),
		Reason:   toString(field(data, "reason")),
	}
}

// MapUnknownData passes the payload through untouched, substituting the
// fallback only when the backend sent null. No structural validation; used
// for endpoints whose result shape is not modeled.
func MapUnknownData(payload, fallback any) any {
	if payload == nil {
		return fallback
	}
	return payload
}
