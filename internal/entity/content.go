package entity

import (
	"context"
	"encoding/json"
	"fmt"
)

// BlockType discriminates the payload shape of a content block.
type BlockType string

const (
	BlockHero         BlockType = "hero"
	BlockFeatures     BlockType = "features"
	BlockTestimonials BlockType = "testimonials"
	BlockPartners     BlockType = "partners"
	BlockCTA          BlockType = "cta"
	BlockText         BlockType = "text"
)

func (t BlockType) Valid() bool {
	switch t {
	case BlockHero, BlockFeatures, BlockTestimonials, BlockPartners, BlockCTA, BlockText:
		return true
	}
	return false
}

// CTALink is a call-to-action target shared by several payloads.
type CTALink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type HeroPayload struct {
	Title           string  `json:"title"`
	Subtitle        string  `json:"subtitle"`
	PrimaryCTA      CTALink `json:"cta1"`
	SecondaryCTA    CTALink `json:"cta2"`
	BackgroundImage string  `json:"background_image,omitempty"`
}

type FeatureItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type FeaturesPayload struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []FeatureItem `json:"items"`
}

type TestimonialItem struct {
	ID          string `json:"id"`
	Quote       string `json:"quote"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Institution string `json:"institution"`
	Avatar      string `json:"avatar,omitempty"`
}

type TestimonialsPayload struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Items    []TestimonialItem `json:"items"`
}

type PartnerItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type PartnersPayload struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []PartnerItem `json:"items"`
}

type CTAPayload struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	CTA      CTALink `json:"cta"`
}

type TextPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// BlockPayload is the tagged union over the fixed block kinds. The tag lives
// in ContentBlock.Type; every payload knows which tag it belongs to.
type BlockPayload interface {
	BlockType() BlockType
}

func (HeroPayload) BlockType() BlockType         { return BlockHero }
func (FeaturesPayload) BlockType() BlockType     { return BlockFeatures }
func (TestimonialsPayload) BlockType() BlockType { return BlockTestimonials }
func (PartnersPayload) BlockType() BlockType     { return BlockPartners }
func (CTAPayload) BlockType() BlockType          { return BlockCTA }
func (TextPayload) BlockType() BlockType         { return BlockText }

// DecodePayload dispatches on the stored block type and decodes the raw JSON
// payload into its concrete shape.
func DecodePayload(t BlockType, raw []byte) (BlockPayload, error) {
	switch t {
	case BlockHero:
		var p HeroPayload
		return p, json.Unmarshal(raw, &p)
	case BlockFeatures:
		var p FeaturesPayload
		return p, json.Unmarshal(raw, &p)
	case BlockTestimonials:
		var p TestimonialsPayload
		return p, json.Unmarshal(raw, &p)
	case BlockPartners:
		var p PartnersPayload
		return p, json.Unmarshal(raw, &p)
	case BlockCTA:
		var p CTAPayload
		return p, json.Unmarshal(raw, &p)
	case BlockText:
		var p TextPayload
		return p, json.Unmarshal(raw, &p)
	}
	return nil, fmt.Errorf("unknown block type %q", t)
}

// ContentBlock is a unit of authored page content. Blocks are read-only from
// this service's perspective; the admin area writes them out-of-band.
type ContentBlock struct {
	ID         string       `json:"id,omitempty"`
	PageKey    string       `json:"page_key"`
	Type       BlockType    `json:"type"`
	OrderIndex int          `json:"order_index"`
	Payload    BlockPayload `json:"payload"`
}

type ContentRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]ContentBlock, error)
}
