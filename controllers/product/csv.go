package productcontroller

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
)

var requiredCSVHeaders = []string{"name", "price", "stock", "currency"}

const maxReportedErrors = 5

// ImportError is one rejected row with a field-level reason. Row numbers are
// 1-based over data rows; the header is row 0.
type ImportError struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e ImportError) Error() string {
	return fmt.Sprintf("row %d: %s %s", e.Row, e.Field, e.Reason)
}

// ImportReport consolidates a failed batch for the admin UI: the first five
// errors verbatim plus a count of the rest.
type ImportReport struct {
	Errors    []ImportError `json:"errors"`
	Remaining int           `json:"remaining"`
}

func (r ImportReport) Message() string {
	var parts []string
	for _, e := range r.Errors {
		parts = append(parts, e.Error())
	}
	msg := strings.Join(parts, "; ")
	if r.Remaining > 0 {
		msg += fmt.Sprintf("; ...and %d more errors", r.Remaining)
	}
	return msg
}

// ParseProductsCSV parses and validates CSV text into product records without
// touching the catalog. The batch is all-or-nothing: any invalid row fails the
// whole parse and the returned report lists what was wrong.
func ParseProductsCSV(r io.Reader) ([]models.Product, *ImportReport) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows may legitimately omit trailing optional columns.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &ImportReport{Errors: []ImportError{{Row: 0, Field: "header", Reason: "missing or unreadable header row"}}}
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range requiredCSVHeaders {
		if _, ok := index[h]; !ok {
			return nil, &ImportReport{Errors: []ImportError{{Row: 0, Field: h, Reason: "required column is missing"}}}
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var (
		products []models.Product
		errs     []ImportError
		rowNum   = 0
		now      = time.Now()
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			errs = append(errs, ImportError{Row: rowNum, Field: "row", Reason: "malformed CSV: " + err.Error()})
			continue
		}

		before := len(errs)

		name := field(record, "name")
		if name == "" {
			errs = append(errs, ImportError{Row: rowNum, Field: "name", Reason: "must not be empty"})
		}

		price, err := strconv.ParseFloat(field(record, "price"), 64)
		if err != nil || math.IsInf(price, 0) || math.IsNaN(price) {
			errs = append(errs, ImportError{Row: rowNum, Field: "price", Reason: fmt.Sprintf("%q is not a valid number", field(record, "price"))})
		} else if price < 0 {
			errs = append(errs, ImportError{Row: rowNum, Field: "price", Reason: fmt.Sprintf("%q must not be negative", field(record, "price"))})
		}

		stock, err := strconv.Atoi(field(record, "stock"))
		if err != nil {
			errs = append(errs, ImportError{Row: rowNum, Field: "stock", Reason: fmt.Sprintf("%q is not a valid integer", field(record, "stock"))})
		} else if stock < 0 {
			errs = append(errs, ImportError{Row: rowNum, Field: "stock", Reason: fmt.Sprintf("%q must not be negative", field(record, "stock"))})
		}

		currency := field(record, "currency")
		if !models.ValidCurrency(currency) {
			errs = append(errs, ImportError{Row: rowNum, Field: "currency", Reason: fmt.Sprintf("%q must be exactly USD or PKR", currency)})
		}

		if len(errs) > before {
			continue
		}

		category := field(record, "category")
		if category == "" {
			category = "Uncategorized"
		}

		products = append(products, models.Product{
			ID:              generateProductID(now),
			Name:            name,
			Description:     field(record, "description"),
			LongDescription: field(record, "longdescription"),
			Category:        category,
			ImageURL:        field(record, "imageurl"),
			Price:           price,
			Stock:           stock,
			Currency:        models.Currency(currency),
		})
	}

	if len(errs) > 0 {
		report := &ImportReport{Errors: errs}
		if len(errs) > maxReportedErrors {
			report.Errors = errs[:maxReportedErrors]
			report.Remaining = len(errs) - maxReportedErrors
		}
		return nil, report
	}
	return products, nil
}

// ImportProductsFromCSV validates the batch and appends it to the catalog in
// one transaction. A rejected batch changes nothing.
func ImportProductsFromCSV(db *gorm.DB, r io.Reader) (int, *ImportReport, error) {
	products, report := ParseProductsCSV(r)
	if report != nil {
		return 0, report, nil
	}
	if len(products) == 0 {
		return 0, nil, nil
	}
	if err := db.Create(&products).Error; err != nil {
		return 0, nil, err
	}
	return len(products), nil, nil
}

// POST /admin/products/import-csv
// Accepts a multipart "file" upload or raw CSV in the request body.
func ImportProductsFromCSVHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var src io.Reader = c.Request.Body
		if fileHeader, err := c.FormFile("file"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
				return
			}
			defer file.Close()
			src = file
		}

		created, report, err := ImportProductsFromCSV(db, src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import products"})
			return
		}
		if report != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     report.Message(),
				"errors":    report.Errors,
				"remaining": report.Remaining,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Import completed", "created_count": created})
	}
}
