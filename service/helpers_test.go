package service

import (
	"context"
	"database/sql"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	_ "modernc.org/sqlite"

	"variant-studio/compositor"
	"variant-studio/config"
	"variant-studio/db"
	"variant-studio/imageio"
	"variant-studio/models"
	"variant-studio/repository"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	data, err := imageio.EncodePNG(imaging.New(w, h, c))
	if err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return data
}

// productPhoto is a two-tone image so its hash is not all ones.
func productPhoto(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(120, 90, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	img = imaging.Overlay(img, imaging.New(60, 90, color.NRGBA{A: 255}), image.Point{}, 1.0)
	data, err := imageio.EncodePNG(img)
	if err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return data
}

func newTestRepo(t *testing.T) *repository.ProductRepository {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	if err := db.Migrate(context.Background(), conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewProductRepository(conn, config.DriverSQLite)
}

func newTestVariantService(policy models.FailurePolicy) *VariantService {
	return NewVariantService(compositor.NewDefault(), 4, 0, policy)
}
