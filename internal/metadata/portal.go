package metadata

import (
	"github.com/feral-file/ip-search-agent/internal/domain"
)

// AssetMetadata is everything gathered about one IP asset: the registry record,
// the external metadata documents and the merged portal view
type AssetMetadata struct {
	Basic       domain.RawAssetRecord  `json:"basic"`
	IPMetadata  map[string]interface{} `json:"ipMetadata"`
	NFTMetadata map[string]interface{} `json:"nftMetadata"`
	PortalData  PortalView             `json:"portalData"`
}

// PortalView is the display-ready merge of an asset's record and metadata.
// Every section is always populated.
type PortalView struct {
	DisplayInfo      DisplayInfo      `json:"displayInfo"`
	TechnicalInfo    TechnicalInfo    `json:"technicalInfo"`
	LicenseInfo      LicenseInfo      `json:"licenseInfo"`
	RelationshipInfo RelationshipInfo `json:"relationshipInfo"`
	FinancialInfo    FinancialInfo    `json:"financialInfo"`
	AIInfo           AIInfo           `json:"aiInfo"`
	AdditionalInfo   AdditionalInfo   `json:"additionalInfo"`
}

type DisplayInfo struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	MediaURL    string           `json:"mediaUrl"`
	MediaType   string           `json:"mediaType"`
	Creators    []domain.Creator `json:"creators"`
	CreatedAt   string           `json:"createdAt"`
}

type TechnicalInfo struct {
	IPID             string `json:"ipId"`
	NFTContract      string `json:"nftContract"`
	TokenID          string `json:"tokenId"`
	Owner            string `json:"owner"`
	RegistrationDate string `json:"registrationDate"`
	MetadataURI      string `json:"metadataURI"`
	MetadataHash     string `json:"metadataHash"`
	NFTTokenURI      string `json:"nftTokenURI"`
	NFTMetadataHash  string `json:"nftMetadataHash"`
}

type LicenseInfo struct {
	HasLicenseTerms    bool                 `json:"hasLicenseTerms"`
	LicenseTerms       []domain.LicenseTerm `json:"licenseTerms"`
	CommercialUse      bool                 `json:"commercialUse"`
	DerivativesAllowed bool                 `json:"derivativesAllowed"`
	MintingFee         string               `json:"mintingFee"`
}

type RelationshipInfo struct {
	HasParents    bool                  `json:"hasParents"`
	HasChildren   bool                  `json:"hasChildren"`
	ParentCount   int                   `json:"parentCount"`
	ChildrenCount int                   `json:"childrenCount"`
	Parents       []domain.RelatedAsset `json:"parents"`
	Children      []domain.RelatedAsset `json:"children"`
}

type FinancialInfo struct {
	RoyaltyInfo        *domain.RoyaltyInfo  `json:"royaltyInfo"`
	HasRoyalties       bool                 `json:"hasRoyalties"`
	TransactionCount   int                  `json:"transactionCount"`
	RecentTransactions []domain.Transaction `json:"recentTransactions"`
}

// AIInfo is either a plain asset (IsAIAgent false, no file fields) or an AI agent with its character file
type AIInfo struct {
	IsAIAgent         bool   `json:"isAIAgent"`
	CharacterFileURL  string `json:"characterFileUrl,omitempty"`
	CharacterFileHash string `json:"characterFileHash,omitempty"`
}

// MediaItem is one entry of the IPA metadata media list
type MediaItem struct {
	Name     string `json:"name,omitempty"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
}

type AdditionalInfo struct {
	Tags           []string               `json:"tags"`
	IPType         string                 `json:"ipType"`
	WatermarkImage *string                `json:"watermarkImage"`
	Media          []MediaItem            `json:"media"`
	App            *string                `json:"app"`
	RobotTerms     map[string]interface{} `json:"robotTerms"`
}
