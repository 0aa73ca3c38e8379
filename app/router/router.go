package router

import (
	"net/http"

	"variant-studio/app/controller"
)

type Controllers struct {
	Template *controller.TemplateController
	Shipping *controller.ShippingController
	Product  *controller.ProductController
	Variant  *controller.VariantController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Catalog
	mux.HandleFunc("/api/templates", controllers.Template.ListTemplates)
	mux.HandleFunc("/api/categories", controllers.Template.ListCategories)

	// Shipping
	mux.HandleFunc("/api/shipping/calculate", controllers.Shipping.Calculate)
	mux.HandleFunc("/api/get-shipping", controllers.Product.GetShipping)
	mux.HandleFunc("/api/meesho-sync", controllers.Product.MeeshoSync)

	// Products and hashes
	mux.HandleFunc("/api/upload", controllers.Product.Upload)
	mux.HandleFunc("/api/hash/distance", controllers.Product.HashDistance)

	// Variants
	mux.HandleFunc("/api/generate", controllers.Variant.Generate)
	mux.HandleFunc("/api/generate-images", controllers.Variant.GenerateImages)
	mux.HandleFunc("/api/image/", controllers.Variant.GetImage)
}
