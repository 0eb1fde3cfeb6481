package enrich

import (
	"strings"

	"commerce-lake/internal/domain"
)

// addEmailFeatures derives email_domain (the part after "@") and a provider
// classification from the email column. Provider matching is a prioritized,
// case-insensitive substring check: Gmail, Yahoo, Outlook (which includes
// Hotmail), then Other.
func addEmailFeatures(t *domain.Table) *domain.Table {
	if !t.HasColumn("email") {
		return t
	}

	out := t.Clone()
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		email, _ := row["email"].(string)
		var dom string
		if _, after, found := strings.Cut(email, "@"); found {
			dom = after
			row["email_domain"] = dom
		}
		row["email_provider_type"] = providerFor(dom)
	}
	out.AddColumns("email_domain", "email_provider_type")
	return out
}

func providerFor(domainName string) string {
	d := strings.ToLower(domainName)
	switch {
	case strings.Contains(d, "gmail"):
		return "Gmail"
	case strings.Contains(d, "yahoo"):
		return "Yahoo"
	case strings.Contains(d, "outlook"), strings.Contains(d, "hotmail"):
		return "Outlook"
	default:
		return "Other"
	}
}

// addProductNameFeatures derives product_name_length (character count) and
// product_word_count (whitespace-delimited tokens) from product_name.
func addProductNameFeatures(t *domain.Table) *domain.Table {
	if !t.HasColumn("product_name") {
		return t
	}

	out := t.Clone()
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		name, ok := row["product_name"].(string)
		if !ok {
			continue
		}
		row["product_name_length"] = int64(len([]rune(name)))
		row["product_word_count"] = int64(len(strings.Fields(name)))
	}
	out.AddColumns("product_name_length", "product_word_count")
	return out
}
