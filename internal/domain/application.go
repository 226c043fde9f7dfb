package domain

// BusinessType classifies the merchant's business.
type BusinessType string

const (
	BusinessRetail           BusinessType = "retail"
	BusinessRestaurant       BusinessType = "restaurant"
	BusinessOnline           BusinessType = "online"
	BusinessPersonalServices BusinessType = "personal_services"
	BusinessOnTheGo          BusinessType = "on_the_go"
)

// BusinessInfo holds free-form facts about the merchant's business.
type BusinessInfo struct {
	Name          string `json:"name,omitempty"`
	Industry      string `json:"industry,omitempty"`
	MonthlyVolume int    `json:"volume,omitempty"`
	Description   string `json:"description,omitempty"`
}

// HardwareItem is one priced hardware line item in a solution package.
type HardwareItem struct {
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"` // "stationary" | "portable" | "accessory"
}

// SolutionPackage is the hardware/software bundle recommended to the merchant.
type SolutionPackage struct {
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Description    string         `json:"description,omitempty"`
	RecommendedFor []string       `json:"recommendedFor,omitempty"`
	Devices        []string       `json:"devices,omitempty"`
	Features       []string       `json:"features,omitempty"`
	Hardware       []HardwareItem `json:"hardware,omitempty"`
	TotalCost      float64        `json:"totalCost"`
}

// Location is one business location on the application.
type Location struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// DocumentType classifies an uploaded legal document.
type DocumentType string

const (
	DocBusinessLicense DocumentType = "businessLicense"
	DocTaxID           DocumentType = "taxID"
	DocBankInfo        DocumentType = "bankInfo"
	DocOwnerID         DocumentType = "ownerID"
)

// DocumentRecord is an uploaded document plus its extraction result.
type DocumentRecord struct {
	File       string            `json:"file"`
	Type       DocumentType      `json:"type"`
	Data       map[string]string `json:"data,omitempty"`
	Confidence float64           `json:"confidence"`
}

// DocumentClassification is the parsed result of the document-extraction
// prompt: the identified document type and the fields pulled from it.
type DocumentClassification struct {
	DocumentType  DocumentType      `json:"documentType"`
	ExtractedData map[string]string `json:"extractedData"`
	Confidence    float64           `json:"confidence"`
}

// Snapshot is a read-only copy of the application store's fields, supplied
// to prompt construction on every request.
type Snapshot struct {
	BusinessType    BusinessType      `json:"businessType,omitempty"`
	BusinessInfo    BusinessInfo      `json:"businessInfo"`
	SelectedPackage *SolutionPackage  `json:"selectedPackage"`
	Locations       []Location        `json:"locations"`
	Documents       []DocumentRecord  `json:"documents"`
	ExtractedData   map[string]string `json:"extractedData"`
}
