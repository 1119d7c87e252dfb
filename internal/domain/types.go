package domain

import (
	"encoding/json"
	"strings"
)

// MediaType represents the media category an IP asset is searched or labelled by
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeAudio MediaType = "audio"
	MediaTypeVideo MediaType = "video"
	MediaTypeText  MediaType = "text"
)

// ParseMediaType returns the media type named by s, ignoring case and surrounding whitespace
func ParseMediaType(s string) (MediaType, bool) {
	switch MediaType(strings.ToLower(strings.TrimSpace(s))) {
	case MediaTypeImage:
		return MediaTypeImage, true
	case MediaTypeAudio:
		return MediaTypeAudio, true
	case MediaTypeVideo:
		return MediaTypeVideo, true
	case MediaTypeText:
		return MediaTypeText, true
	}
	return "", false
}

// License represents a license category used as a search filter
type License string

const (
	LicenseOpenUse       License = "open use"
	LicenseCommercial    License = "commercial"
	LicenseNonCommercial License = "non-commercial"
	LicenseDerivatives   License = "derivatives"
)

// ParseLicense returns the license named by s, ignoring case and surrounding whitespace
func ParseLicense(s string) (License, bool) {
	switch License(strings.ToLower(strings.TrimSpace(s))) {
	case LicenseOpenUse:
		return LicenseOpenUse, true
	case LicenseCommercial:
		return LicenseCommercial, true
	case LicenseNonCommercial:
		return LicenseNonCommercial, true
	case LicenseDerivatives:
		return LicenseDerivatives, true
	}
	return "", false
}

// ParsedQuery is the structured interpretation of a user's search input
type ParsedQuery struct {
	Query        string     `json:"query"`
	MediaType    *MediaType `json:"mediaType"`
	License      *License   `json:"license"`
	Creator      *string    `json:"creator"`
	Tags         []string   `json:"tags"`
	Intent       string     `json:"intent"`
	IsIdentifier bool       `json:"isIdentifier"`
}

// UnmarshalJSON accepts the legacy isIPID flag alongside isIdentifier
func (p *ParsedQuery) UnmarshalJSON(data []byte) error {
	type alias ParsedQuery
	aux := struct {
		*alias
		IsIPID *bool `json:"isIPID"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.IsIPID != nil && *aux.IsIPID {
		p.IsIdentifier = true
	}
	return nil
}

// FlexString is a string that also decodes from a JSON number.
// The registry reports amounts such as minting fees in either form.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// LicenseTerm is one set of license terms attached to an IP asset
type LicenseTerm struct {
	LicenseTermsID         string      `json:"licenseTermsId,omitempty"`
	Transferable           bool        `json:"transferable"`
	CommercialUse          bool        `json:"commercialUse"`
	CommercialAttribution  bool        `json:"commercialAttribution"`
	CommercialRevShare     int         `json:"commercialRevShare"`
	DerivativesAllowed     bool        `json:"derivativesAllowed"`
	DerivativesAttribution bool        `json:"derivativesAttribution"`
	DerivativesApproval    bool        `json:"derivativesApproval"`
	DerivativesReciprocal  bool        `json:"derivativesReciprocal"`
	DefaultMintingFee      *FlexString `json:"defaultMintingFee,omitempty"`
	Currency               string      `json:"currency,omitempty"`
	URI                    string      `json:"uri,omitempty"`
}

// MintingFee returns the term's default minting fee if it defines one
func (t LicenseTerm) MintingFee() (string, bool) {
	if t.DefaultMintingFee == nil || *t.DefaultMintingFee == "" {
		return "", false
	}
	return string(*t.DefaultMintingFee), true
}

// Creator is a contributor credited on an IP asset
type Creator struct {
	Name                string `json:"name,omitempty"`
	Address             string `json:"address,omitempty"`
	Description         string `json:"description,omitempty"`
	ContributionPercent int    `json:"contributionPercent,omitempty"`
	Role                string `json:"role,omitempty"`
}

// RelatedAsset is a parent or child reference in the derivative graph
type RelatedAsset struct {
	IPID  string `json:"ipId"`
	Title string `json:"title,omitempty"`
}

// Transaction is an on-chain event recorded against an IP asset
type Transaction struct {
	TxHash      string `json:"txHash"`
	EventType   string `json:"eventType,omitempty"`
	BlockNumber string `json:"blockNumber,omitempty"`
	Initiator   string `json:"initiator,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// RoyaltyInfo describes the royalty configuration of an IP asset
type RoyaltyInfo struct {
	Policy     string `json:"royaltyPolicy,omitempty"`
	Percentage int    `json:"percentage,omitempty"`
	Currency   string `json:"currency,omitempty"`
}

// RawAssetRecord is the registry's record of an IP asset, normalized from the wire format
type RawAssetRecord struct {
	IPID             string         `json:"ipId"`
	Owner            string         `json:"owner"`
	NFTContract      string         `json:"nftContract"`
	TokenID          string         `json:"tokenId"`
	ChainID          string         `json:"chainId,omitempty"`
	Title            string         `json:"title,omitempty"`
	Description      string         `json:"description,omitempty"`
	Image            string         `json:"image,omitempty"`
	MediaURL         string         `json:"mediaUrl,omitempty"`
	MediaType        string         `json:"mediaType,omitempty"`
	Creators         []Creator      `json:"creators,omitempty"`
	MetadataURI      string         `json:"metadataURI,omitempty"`
	MetadataHash     string         `json:"metadataHash,omitempty"`
	NFTTokenURI      string         `json:"nftTokenURI,omitempty"`
	NFTMetadataHash  string         `json:"nftMetadataHash,omitempty"`
	RegistrationDate string         `json:"registrationDate,omitempty"`
	LicenseTerms     []LicenseTerm  `json:"licenseTerms,omitempty"`
	Parents          []RelatedAsset `json:"parents,omitempty"`
	Children         []RelatedAsset `json:"children,omitempty"`
	Royalty          *RoyaltyInfo   `json:"royaltyInfo,omitempty"`
	Transactions     []Transaction  `json:"transactions,omitempty"`
}

// HasMetadataURIs reports whether the record points at any external metadata document
func (r RawAssetRecord) HasMetadataURIs() bool {
	return r.MetadataURI != "" || r.NFTTokenURI != ""
}

// AssetKind tags whether an asset result came from the registry or was substituted
type AssetKind string

const (
	AssetKindReal AssetKind = "real"
	AssetKindMock AssetKind = "mock"
)

// AssetResult is the outcome of a registry lookup that produced a record
type AssetResult struct {
	Kind       AssetKind
	Record     RawAssetRecord
	MockReason string
}

// IsMock reports whether the record is a demonstration substitute
func (r AssetResult) IsMock() bool {
	return r.Kind == AssetKindMock
}
