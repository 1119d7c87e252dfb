package story

import (
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/types"
)

// AssetListResponse is the envelope of the asset list and search endpoints
type AssetListResponse struct {
	Data       []Asset     `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination is the paging block of list requests and responses
type Pagination struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
	Total  int `json:"total,omitempty"`
}

// Asset is an IP asset as returned by the Story API.
// Older and newer API versions name some fields differently, so both spellings are accepted.
type Asset struct {
	IPID             string               `json:"ipId"`
	ID               string               `json:"id"`
	Owner            string               `json:"owner"`
	OwnerAddress     string               `json:"ownerAddress"`
	NFTContract      string               `json:"nftContract"`
	TokenContract    string               `json:"tokenContract"`
	TokenID          domain.FlexString    `json:"tokenId"`
	ChainID          domain.FlexString    `json:"chainId"`
	Title            string               `json:"title"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	Image            string               `json:"image"`
	MediaURL         string               `json:"mediaUrl"`
	MediaType        string               `json:"mediaType"`
	MetadataURI      string               `json:"metadataURI"`
	IPMetadataURI    string               `json:"ipMetadataUri"`
	MetadataHash     string               `json:"metadataHash"`
	NFTTokenURI      string               `json:"nftTokenURI"`
	NFTMetadataHash  string               `json:"nftMetadataHash"`
	RegistrationDate string               `json:"registrationDate"`
	CreatedAt        string               `json:"createdAt"`
	NFTMetadata      *NFTMetadata         `json:"nftMetadata"`
	Creators         []domain.Creator     `json:"creators"`
	Licenses         []License            `json:"licenses"`
	LicenseTerms     []domain.LicenseTerm `json:"licenseTerms"`
	Parents          []RelatedAsset       `json:"parents"`
	Children         []RelatedAsset       `json:"children"`
	RoyaltyInfo      *domain.RoyaltyInfo  `json:"royaltyInfo"`
	Transactions     []domain.Transaction `json:"transactions"`
}

// NFTMetadata is the token metadata the API caches for the underlying NFT
type NFTMetadata struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TokenURI    string    `json:"tokenUri"`
	ImageURL    string    `json:"imageUrl"`
	Image       *NFTImage `json:"image"`
}

// NFTImage holds the cached and original image locations of an NFT
type NFTImage struct {
	CachedURL   string `json:"cachedUrl"`
	OriginalURL string `json:"originalUrl"`
}

// License is a license attachment with its terms
type License struct {
	LicenseTermsID domain.FlexString  `json:"licenseTermsId"`
	Terms          domain.LicenseTerm `json:"terms"`
}

// RelatedAsset is a parent or child link in the derivative graph
type RelatedAsset struct {
	IPID     string `json:"ipId"`
	ParentID string `json:"parentIpId"`
	ChildID  string `json:"childIpId"`
	Title    string `json:"title"`
}

// SearchRequest is the body of the asset search endpoint
type SearchRequest struct {
	Query      string     `json:"query"`
	MediaType  *string    `json:"mediaType,omitempty"`
	License    *string    `json:"license,omitempty"`
	Creator    *string    `json:"creator,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Pagination Pagination `json:"pagination"`
}

// ToRecord normalizes the API asset into the registry record used across the service
func (a Asset) ToRecord() domain.RawAssetRecord {
	record := domain.RawAssetRecord{
		IPID:             types.FirstNonEmpty(a.IPID, a.ID),
		Owner:            types.FirstNonEmpty(a.Owner, a.OwnerAddress),
		NFTContract:      types.FirstNonEmpty(a.NFTContract, a.TokenContract),
		TokenID:          string(a.TokenID),
		ChainID:          string(a.ChainID),
		Title:            types.FirstNonEmpty(a.Title, a.Name),
		Description:      a.Description,
		Image:            a.Image,
		MediaURL:         a.MediaURL,
		MediaType:        a.MediaType,
		Creators:         a.Creators,
		MetadataURI:      types.FirstNonEmpty(a.MetadataURI, a.IPMetadataURI),
		MetadataHash:     a.MetadataHash,
		NFTTokenURI:      a.NFTTokenURI,
		NFTMetadataHash:  a.NFTMetadataHash,
		RegistrationDate: types.FirstNonEmpty(a.RegistrationDate, a.CreatedAt),
		LicenseTerms:     a.licenseTerms(),
		Parents:          relatedAssets(a.Parents, func(r RelatedAsset) string { return types.FirstNonEmpty(r.IPID, r.ParentID) }),
		Children:         relatedAssets(a.Children, func(r RelatedAsset) string { return types.FirstNonEmpty(r.IPID, r.ChildID) }),
		Royalty:          a.RoyaltyInfo,
		Transactions:     a.Transactions,
	}

	if nft := a.NFTMetadata; nft != nil {
		record.Title = types.FirstNonEmpty(record.Title, nft.Name)
		record.Description = types.FirstNonEmpty(record.Description, nft.Description)
		record.NFTTokenURI = types.FirstNonEmpty(record.NFTTokenURI, nft.TokenURI)
		image := nft.ImageURL
		if nft.Image != nil {
			image = types.FirstNonEmpty(image, nft.Image.CachedURL, nft.Image.OriginalURL)
		}
		record.Image = types.FirstNonEmpty(record.Image, image)
	}

	return record
}

func (a Asset) licenseTerms() []domain.LicenseTerm {
	terms := append([]domain.LicenseTerm(nil), a.LicenseTerms...)
	for _, l := range a.Licenses {
		term := l.Terms
		if term.LicenseTermsID == "" {
			term.LicenseTermsID = string(l.LicenseTermsID)
		}
		terms = append(terms, term)
	}
	return terms
}

func relatedAssets(links []RelatedAsset, id func(RelatedAsset) string) []domain.RelatedAsset {
	if len(links) == 0 {
		return nil
	}
	related := make([]domain.RelatedAsset, 0, len(links))
	for _, l := range links {
		related = append(related, domain.RelatedAsset{IPID: id(l), Title: l.Title})
	}
	return related
}
