// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pagestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StorageConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPage(keyword string) *types.Page {
	return &types.Page{
		Keyword:        keyword,
		BrandName:      "Skyscanner",
		BrandDomain:    "skyscanner.net",
		BrandID:        "brand-1",
		Vertical:       types.VerticalTravel,
		Intent:         types.IntentComparison,
		Blueprint:      "generic_comparison",
		DestinationURL: "https://example.com/go",
		Document: &types.ContentDocument{
			Title: "Compare Flight Deals",
			H1:    "Flight Deals",
			Sections: []types.Section{
				{Type: types.SectionHero, Heading: "Find Flights"},
			},
		},
		Score:  88,
		Passed: true,
	}
}

func TestSaveAssignsID(t *testing.T) {
	s := newTestStore(t)
	page := testPage("cheap flights")

	id, err := s.Save(context.Background(), page)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty page ID")
	}
	if page.ID != id {
		t.Errorf("page.ID = %q, want %q", page.ID, id)
	}
	if page.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, testPage("cheap flights"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Keyword != "cheap flights" || got.Vertical != types.VerticalTravel {
		t.Errorf("got %+v", got)
	}
	if got.Document == nil || got.Document.Title != "Compare Flight Deals" {
		t.Errorf("document = %+v", got.Document)
	}
	if len(got.Document.Sections) != 1 || got.Document.Sections[0].Type != types.SectionHero {
		t.Errorf("sections = %+v", got.Document.Sections)
	}
	if !got.Passed || got.Score != 88 {
		t.Errorf("scan summary = passed %v score %d", got.Passed, got.Score)
	}
}

func TestSaveReplacesExistingID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	page := testPage("cheap flights")
	id, err := s.Save(ctx, page)
	if err != nil {
		t.Fatal(err)
	}

	page.Score = 42
	if _, err := s.Save(ctx, page); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Score != 42 {
		t.Errorf("score after replace = %d, want 42", got.Score)
	}
	pages, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 1 {
		t.Errorf("page count = %d, want 1", len(pages))
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, kw := range []string{"first", "second", "third"} {
		page := testPage(kw)
		page.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if _, err := s.Save(ctx, page); err != nil {
			t.Fatal(err)
		}
	}

	pages, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 3 {
		t.Fatalf("page count = %d", len(pages))
	}
	if pages[0].Keyword != "third" || pages[2].Keyword != "first" {
		t.Errorf("order = %s, %s, %s", pages[0].Keyword, pages[1].Keyword, pages[2].Keyword)
	}
	for _, p := range pages {
		if p.Document != nil {
			t.Error("listing carries full document")
		}
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, testPage("cheap flights"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestSaveRequiresDocument(t *testing.T) {
	s := newTestStore(t)
	page := testPage("cheap flights")
	page.Document = nil
	if _, err := s.Save(context.Background(), page); err == nil {
		t.Fatal("page without document saved")
	}
}
