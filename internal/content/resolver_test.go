package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgeup/edgeup-api/internal/entity"
)

func authoredHero() entity.ContentBlock {
	return entity.ContentBlock{
		ID:      "blk-1",
		PageKey: "home",
		Type:    entity.BlockHero,
		Payload: entity.HeroPayload{
			Title:      "Authored hero title",
			Subtitle:   "Authored subtitle",
			PrimaryCTA: entity.CTALink{Text: "Go", URL: "/contact"},
		},
	}
}

func TestResolverDefaultsCoverEveryHomeBlockType(t *testing.T) {
	r := NewResolver(nil, nil)

	blocks := r.Blocks("home")

	assert.Len(t, blocks, 5)
	for i, want := range PageTypes("home") {
		assert.Equal(t, want, blocks[i].Type)
		assert.NotNil(t, blocks[i].Payload)
		assert.Equal(t, want, blocks[i].Payload.BlockType())
	}
}

func TestResolverPrefersAuthoredBlock(t *testing.T) {
	r := NewResolver([]entity.ContentBlock{authoredHero()}, nil)

	blocks := r.Blocks("home", entity.BlockHero)

	assert.Len(t, blocks, 1)
	hero := blocks[0].Payload.(entity.HeroPayload)
	assert.Equal(t, "Authored hero title", hero.Title)
}

func TestResolverReturnsDefaultPayloadUnchanged(t *testing.T) {
	r := NewResolver([]entity.ContentBlock{authoredHero()}, nil)

	blocks := r.Blocks("home", entity.BlockCTA)

	assert.Len(t, blocks, 1)
	cta := blocks[0].Payload.(entity.CTAPayload)
	assert.Equal(t, "Ready to Transform Education at Your Institution?", cta.Title)
	assert.Equal(t, "/contact?demo=true", cta.CTA.URL)
}

func TestResolverUnknownPageKeyYieldsDefaults(t *testing.T) {
	r := NewResolver(nil, nil)

	blocks := r.Blocks("pricing")

	assert.Len(t, blocks, 2)
	assert.Equal(t, entity.BlockText, blocks[0].Type)
	assert.Equal(t, entity.BlockCTA, blocks[1].Type)
	assert.NotNil(t, blocks[0].Payload)
	assert.NotNil(t, blocks[1].Payload)
}

func TestResolverLowestOrderIndexWins(t *testing.T) {
	second := authoredHero()
	second.ID = "blk-2"
	second.OrderIndex = 5
	second.Payload = entity.HeroPayload{Title: "Later hero"}

	first := authoredHero()
	first.OrderIndex = 1

	// Insertion order must not matter.
	r := NewResolver([]entity.ContentBlock{second, first}, nil)

	blocks := r.Blocks("home", entity.BlockHero)
	hero := blocks[0].Payload.(entity.HeroPayload)
	assert.Equal(t, "Authored hero title", hero.Title)
}

func TestResolverSkipsBlocksWithoutPayload(t *testing.T) {
	broken := entity.ContentBlock{PageKey: "home", Type: entity.BlockHero}

	r := NewResolver([]entity.ContentBlock{broken}, nil)

	blocks := r.Blocks("home", entity.BlockHero)
	assert.NotNil(t, blocks[0].Payload, "default must fill in for a payload-less authored block")
}

func TestResolverFallbackHook(t *testing.T) {
	var fallbacks []string
	hook := func(page string, bt entity.BlockType) {
		fallbacks = append(fallbacks, page+"/"+string(bt))
	}

	r := NewResolver([]entity.ContentBlock{authoredHero()}, hook)
	r.Blocks("home", entity.BlockHero, entity.BlockCTA)

	assert.Equal(t, []string{"home/cta"}, fallbacks)
}

func TestPageTypesKnownPages(t *testing.T) {
	assert.Equal(t,
		[]entity.BlockType{entity.BlockHero, entity.BlockFeatures, entity.BlockTestimonials, entity.BlockPartners, entity.BlockCTA},
		PageTypes("home"))
	assert.Equal(t,
		[]entity.BlockType{entity.BlockText, entity.BlockCTA},
		PageTypes("news"))
}
