// Package adgen drives ad-creative generation: single-style renders with a
// content-block fallback, and ten-concept campaigns with researched prompts
// fanned out concurrently.
package adgen

// CampaignSize is the fixed number of concepts produced per campaign. The
// research phase must yield exactly this many prompts before any image
// generation begins.
const CampaignSize = 10

// CampaignOptions is the read-only bundle of brand inputs supplied once per
// campaign.
type CampaignOptions struct {
	AspectRatio  string `json:"aspect_ratio"`
	ProductType  string `json:"product_type"`
	ProductTitle string `json:"product_title"`
	Flavor       string `json:"flavor"`
	CompanyName  string `json:"company_name"`
	Tagline      string `json:"tagline"`
	BrandColors  string `json:"brand_colors"`
}

// ItemStatus is the lifecycle state of one campaign slot.
type ItemStatus string

const (
	ItemStatusPending ItemStatus = "pending"
	ItemStatusDone    ItemStatus = "done"
	ItemStatusError   ItemStatus = "error"
)

// ItemResult is one campaign slot's terminal outcome.
type ItemResult struct {
	Status  ItemStatus `json:"status"`
	URL     string     `json:"url,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ProgressFunc receives each item's outcome as it completes. Items finish in
// whatever order the remote calls resolve; implementations must tolerate
// interleaved delivery from up to CampaignSize concurrent tasks. Each index
// is reported exactly once.
type ProgressFunc func(index int, result ItemResult)
