package metadata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/types"
	"github.com/feral-file/ip-search-agent/internal/uri"
)

const (
	fullDescriptionFallback  = "Story Protocol IP Asset"
	basicDescriptionFallback = "No description available"
	basicIPType              = "unknown"
)

// Aggregator merges a registry record and its external metadata into a portal view
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/metadata_aggregator.go -package=mocks -mock_names=Aggregator=MockMetadataAggregator
type Aggregator interface {
	// Aggregate fetches the record's metadata documents and builds the merged view.
	// Fetch failures degrade to fallbacks; Aggregate never fails.
	Aggregate(ctx context.Context, ipID string, raw domain.RawAssetRecord) *AssetMetadata
}

type aggregator struct {
	fetcher     Fetcher
	uriResolver uri.Resolver
	json        adapter.JSON
	jcs         adapter.JCS
	clock       adapter.Clock
}

// NewAggregator creates a new metadata aggregator
func NewAggregator(fetcher Fetcher, uriResolver uri.Resolver, json adapter.JSON, jcs adapter.JCS, clock adapter.Clock) Aggregator {
	return &aggregator{
		fetcher:     fetcher,
		uriResolver: uriResolver,
		json:        json,
		jcs:         jcs,
		clock:       clock,
	}
}

func (a *aggregator) Aggregate(ctx context.Context, ipID string, raw domain.RawAssetRecord) *AssetMetadata {
	result := &AssetMetadata{Basic: raw}

	if !raw.HasMetadataURIs() {
		logger.DebugCtx(ctx, "No metadata URIs on record, building basic view", zap.String("ipId", ipID))
		result.PortalData = a.basicView(ctx, ipID, raw)
		return result
	}

	if raw.MetadataURI != "" {
		result.IPMetadata = a.fetcher.FetchJSON(ctx, raw.MetadataURI)
	}
	if raw.NFTTokenURI != "" {
		result.NFTMetadata = a.fetcher.FetchJSON(ctx, raw.NFTTokenURI)
	}

	result.PortalData = a.fullView(ctx, ipID, raw, result.IPMetadata, result.NFTMetadata)
	return result
}

// fullView merges ipMetadata, nftMetadata and the record, in that order of precedence
func (a *aggregator) fullView(ctx context.Context, ipID string, raw domain.RawAssetRecord, ipMeta, nftMeta map[string]interface{}) PortalView {
	sources := []Source{
		{Name: SourceIPMetadata, Doc: ipMeta},
		{Name: SourceNFTMetadata, Doc: nftMeta},
		{Name: SourceRecord, Doc: a.recordDoc(ctx, raw)},
	}
	fields := ResolveFields(a.displayRules(ipID, fullDescriptionFallback), sources)

	display := a.displayInfo(fields)
	display.Creators = a.creators(ctx, ipMeta, raw)

	technical := technicalInfo(ipID, raw, display.CreatedAt)
	if technical.MetadataHash == "" {
		technical.MetadataHash = a.canonicalHash(ctx, ipMeta)
	}
	if technical.NFTMetadataHash == "" {
		technical.NFTMetadataHash = a.canonicalHash(ctx, nftMeta)
	}

	return PortalView{
		DisplayInfo:      display,
		TechnicalInfo:    technical,
		LicenseInfo:      licenseInfo(raw.LicenseTerms),
		RelationshipInfo: relationshipInfo(raw),
		FinancialInfo:    financialInfo(raw),
		AIInfo:           aiInfo(ipMeta),
		AdditionalInfo:   a.additionalInfo(ctx, ipMeta),
	}
}

// basicView builds the view from the record alone
func (a *aggregator) basicView(ctx context.Context, ipID string, raw domain.RawAssetRecord) PortalView {
	sources := []Source{{Name: SourceRecord, Doc: a.recordDoc(ctx, raw)}}
	fields := ResolveFields(a.displayRules(ipID, basicDescriptionFallback), sources)

	display := a.displayInfo(fields)
	display.Creators = a.creators(ctx, nil, raw)

	return PortalView{
		DisplayInfo:      display,
		TechnicalInfo:    technicalInfo(ipID, raw, display.CreatedAt),
		LicenseInfo:      licenseInfo(raw.LicenseTerms),
		RelationshipInfo: relationshipInfo(raw),
		FinancialInfo:    financialInfo(raw),
		AIInfo:           AIInfo{IsAIAgent: false},
		AdditionalInfo: AdditionalInfo{
			Tags:   []string{},
			IPType: basicIPType,
			Media:  []MediaItem{},
		},
	}
}

// displayRules returns the precedence table for displayInfo.
// Lookups against absent sources are skipped, so the same table serves the basic view.
func (a *aggregator) displayRules(ipID, descriptionFallback string) []FieldRule {
	return []FieldRule{
		{
			Name: "title",
			Lookups: []Lookup{
				{Source: SourceIPMetadata, Key: "title"},
				{Source: SourceNFTMetadata, Key: "title"},
				{Source: SourceNFTMetadata, Key: "name"},
				{Source: SourceRecord, Key: "title"},
			},
			Default: func() string { return PlaceholderTitle(ipID) },
		},
		{
			Name: "description",
			Lookups: []Lookup{
				{Source: SourceIPMetadata, Key: "description"},
				{Source: SourceNFTMetadata, Key: "description"},
				{Source: SourceRecord, Key: "description"},
			},
			Default: func() string { return descriptionFallback },
		},
		{
			Name: "image",
			Lookups: []Lookup{
				{Source: SourceIPMetadata, Key: "image"},
				{Source: SourceNFTMetadata, Key: "image"},
				{Source: SourceRecord, Key: "image"},
			},
			Default: func() string { return domain.PLACEHOLDER_IMAGE_URL },
		},
		{
			Name: "mediaUrl",
			Lookups: []Lookup{
				{Source: SourceIPMetadata, Key: "mediaUrl"},
				{Source: SourceIPMetadata, Key: "image"},
				{Source: SourceNFTMetadata, Key: "animation_url"},
				{Source: SourceNFTMetadata, Key: "image"},
				{Source: SourceRecord, Key: "mediaUrl"},
				{Source: SourceRecord, Key: "image"},
			},
		},
		{
			Name: "mediaType",
			Lookups: []Lookup{
				{Source: SourceIPMetadata, Key: "mediaType"},
				{Source: SourceRecord, Key: "mediaType"},
			},
			Default: func() string { return domain.UNKNOWN_MEDIA_TYPE },
		},
		{
			Name: "createdAt",
			Lookups: []Lookup{
				{Source: SourceRecord, Key: "registrationDate"},
			},
			Default: func() string { return a.clock.Now().UTC().Format(time.RFC3339) },
		},
	}
}

func (a *aggregator) displayInfo(fields map[string]string) DisplayInfo {
	return DisplayInfo{
		Title:       fields["title"],
		Description: fields["description"],
		Image:       a.uriResolver.Resolve(fields["image"]),
		MediaURL:    a.uriResolver.Resolve(fields["mediaUrl"]),
		MediaType:   fields["mediaType"],
		CreatedAt:   fields["createdAt"],
	}
}

// recordDoc exposes the record's inline fields to the field resolver
func (a *aggregator) recordDoc(ctx context.Context, raw domain.RawAssetRecord) map[string]interface{} {
	var doc map[string]interface{}
	if err := a.json.Convert(raw, &doc); err != nil {
		logger.WarnCtx(ctx, "Failed to convert record for field resolution", zap.String("ipId", raw.IPID), zap.Error(err))
		return nil
	}
	return doc
}

func (a *aggregator) creators(ctx context.Context, ipMeta map[string]interface{}, raw domain.RawAssetRecord) []domain.Creator {
	if list, ok := ipMeta["creators"].([]interface{}); ok && len(list) > 0 {
		var creators []domain.Creator
		err := a.json.Convert(list, &creators)
		if err == nil {
			return creators
		}
		logger.WarnCtx(ctx, "Ignoring malformed creators in metadata", zap.Error(err))
	}
	if len(raw.Creators) > 0 {
		return raw.Creators
	}
	return []domain.Creator{}
}

func (a *aggregator) additionalInfo(ctx context.Context, ipMeta map[string]interface{}) AdditionalInfo {
	info := AdditionalInfo{
		Tags:   []string{},
		IPType: types.FirstNonEmpty(types.MapString(ipMeta, "ipType"), domain.DEFAULT_IP_TYPE),
		Media:  []MediaItem{},
		App:    types.StringPtr(domain.DEFAULT_APP_NAME),
	}

	if tags, ok := ipMeta["tags"].([]interface{}); ok {
		for _, t := range tags {
			if s, ok := t.(string); ok && s != "" {
				info.Tags = append(info.Tags, s)
			}
		}
	}

	if wm := types.MapString(ipMeta, "watermarkImage"); wm != "" {
		info.WatermarkImage = types.StringPtr(a.uriResolver.Resolve(wm))
	}

	if media, ok := ipMeta["media"].([]interface{}); ok && len(media) > 0 {
		var items []MediaItem
		if err := a.json.Convert(media, &items); err != nil {
			logger.WarnCtx(ctx, "Ignoring malformed media list in metadata", zap.Error(err))
		} else {
			info.Media = items
		}
	}

	// app is either a name or an {id, name, website} object
	if app := types.MapString(ipMeta, "app"); app != "" {
		info.App = types.StringPtr(app)
	} else if name := types.MapString(types.MapObject(ipMeta, "app"), "name"); name != "" {
		info.App = types.StringPtr(name)
	}

	info.RobotTerms = types.MapObject(ipMeta, "robotTerms")

	return info
}

// canonicalHash returns the hex sha256 of the RFC 8785 form of doc, or "" when doc is absent
func (a *aggregator) canonicalHash(ctx context.Context, doc map[string]interface{}) string {
	if doc == nil {
		return ""
	}
	canonical, err := a.jcs.Canonicalize(doc)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to canonicalize metadata", zap.Error(err))
		return ""
	}
	hash := sha256.Sum256(canonical)
	return "0x" + hex.EncodeToString(hash[:])
}

func technicalInfo(ipID string, raw domain.RawAssetRecord, createdAt string) TechnicalInfo {
	return TechnicalInfo{
		IPID:             types.FirstNonEmpty(raw.IPID, ipID),
		NFTContract:      raw.NFTContract,
		TokenID:          raw.TokenID,
		Owner:            raw.Owner,
		RegistrationDate: types.FirstNonEmpty(raw.RegistrationDate, createdAt),
		MetadataURI:      raw.MetadataURI,
		MetadataHash:     raw.MetadataHash,
		NFTTokenURI:      raw.NFTTokenURI,
		NFTMetadataHash:  raw.NFTMetadataHash,
	}
}

func licenseInfo(terms []domain.LicenseTerm) LicenseInfo {
	info := LicenseInfo{
		HasLicenseTerms: len(terms) > 0,
		LicenseTerms:    terms,
		MintingFee:      domain.DEFAULT_MINTING_FEE,
	}
	if info.LicenseTerms == nil {
		info.LicenseTerms = []domain.LicenseTerm{}
	}

	feeFound := false
	for _, term := range terms {
		info.CommercialUse = info.CommercialUse || term.CommercialUse
		info.DerivativesAllowed = info.DerivativesAllowed || term.DerivativesAllowed
		if fee, ok := term.MintingFee(); ok && !feeFound {
			info.MintingFee = fee
			feeFound = true
		}
	}
	return info
}

func relationshipInfo(raw domain.RawAssetRecord) RelationshipInfo {
	parents := raw.Parents
	if parents == nil {
		parents = []domain.RelatedAsset{}
	}
	children := raw.Children
	if children == nil {
		children = []domain.RelatedAsset{}
	}
	return RelationshipInfo{
		HasParents:    len(parents) > 0,
		HasChildren:   len(children) > 0,
		ParentCount:   len(parents),
		ChildrenCount: len(children),
		Parents:       parents,
		Children:      children,
	}
}

func financialInfo(raw domain.RawAssetRecord) FinancialInfo {
	recent := raw.Transactions
	if len(recent) > domain.MAX_RECENT_TRANSACTIONS {
		recent = recent[:domain.MAX_RECENT_TRANSACTIONS]
	}
	if recent == nil {
		recent = []domain.Transaction{}
	}
	return FinancialInfo{
		RoyaltyInfo:        raw.Royalty,
		HasRoyalties:       raw.Royalty != nil,
		TransactionCount:   len(raw.Transactions),
		RecentTransactions: recent,
	}
}

func aiInfo(ipMeta map[string]interface{}) AIInfo {
	ai := types.MapObject(ipMeta, "aiMetadata")
	fileURL := types.MapString(ai, "characterFileUrl")
	fileHash := types.MapString(ai, "characterFileHash")
	if fileURL == "" || fileHash == "" {
		return AIInfo{IsAIAgent: false}
	}
	return AIInfo{
		IsAIAgent:         true,
		CharacterFileURL:  fileURL,
		CharacterFileHash: fileHash,
	}
}

// PlaceholderTitle is the display title of an asset that has no title anywhere
func PlaceholderTitle(ipID string) string {
	return "IP Asset " + domain.ShortIdentifier(ipID, 8) + "..."
}
