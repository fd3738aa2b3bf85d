// backend-go/internal/api/handlers/respond.go
package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses: validation failures
// are the caller's fault, missing references are 404, everything else is a
// server-side failure.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}

// resolvePolicy reads the batch failure policy from the query string,
// answering 400 for an unknown label.
func resolvePolicy(c *gin.Context) (service.ImportPolicy, bool) {
	raw := c.Query("policy")
	policy, ok := service.ParseImportPolicy(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown policy %q", raw)})
		return "", false
	}

	return policy, true
}

// openUpload fetches the uploaded CSV from the multipart form.
func openUpload(c *gin.Context) (io.ReadCloser, bool) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload", "details": err.Error()})
		return nil, false
	}

	return file, true
}

// mergeParseErrors folds CSV parse failures into an import report so the
// caller sees one consolidated outcome for the batch.
func mergeParseErrors(report *domain.ImportReport, errs []*domain.ValidationError) *domain.ImportReport {
	if report == nil {
		report = &domain.ImportReport{}
	}
	report.Skipped += len(errs)
	for _, verr := range errs {
		report.Errors = append(report.Errors, verr.Error())
	}

	return report
}
