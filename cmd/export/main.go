package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ikkim/commerce-backend/config"
	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/internal/db"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Exports the catalog and stock levels to an XLSX workbook for offline review.
func main() {
	outPath := "catalog.xlsx"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := exportCatalog(outPath); err != nil {
		logger.Fatal("Export failed", err)
	}

	fmt.Printf("Catalog exported to %s\n", outPath)
}

func exportCatalog(outPath string) error {
	gdb := db.GetDB()

	var products []model.Product
	if err := gdb.
		Preload("Supplier").
		Preload("Inventory").
		Preload("CategoryLinks.Category").
		Order("id").
		Find(&products).Error; err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"SKU", "Name", "Price", "Cost Price", "Supplier", "Categories", "Stock", "Location", "Active"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, product := range products {
		var categories []string
		for _, link := range product.CategoryLinks {
			categories = append(categories, link.Category.Name)
		}

		supplierName := ""
		if product.Supplier != nil {
			supplierName = product.Supplier.Name
		}

		stock := 0
		location := ""
		if product.Inventory != nil {
			stock = product.Inventory.Quantity
			location = product.Inventory.Location
		}

		values := []interface{}{
			product.SKU,
			product.Name,
			product.Price,
			costPriceCell(product.CostPrice),
			supplierName,
			strings.Join(categories, ", "),
			stock,
			location,
			product.IsActive,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := writeInventorySheet(f, products); err != nil {
		return err
	}

	logger.Info("Catalog rows exported", map[string]interface{}{
		"products": len(products),
	})
	return f.SaveAs(outPath)
}

// writeInventorySheet adds a stock-level view keyed by SKU.
func writeInventorySheet(f *excelize.File, products []model.Product) error {
	const sheet = "Inventory"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"SKU", "Product", "Quantity", "Location"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 1
	for _, product := range products {
		if product.Inventory == nil {
			continue
		}
		row++
		values := []interface{}{
			product.SKU,
			product.Name,
			product.Inventory.Quantity,
			product.Inventory.Location,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func costPriceCell(costPrice *float64) interface{} {
	if costPrice == nil {
		return ""
	}
	return *costPrice
}
