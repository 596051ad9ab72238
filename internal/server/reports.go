package server

import (
	"net/http"
	"strconv"

	"github.com/a13312860897-create/invomate-sub001/internal/reporting/consistency"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

func parseOwnerID(c *gin.Context) (snowflake.ID, error) {
	raw := c.Param("owner_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, reportingdomain.ErrInvalidOwner
	}
	return snowflake.ID(id), nil
}

func (s *Server) GetUnifiedReport(c *gin.Context) {
	ownerID, err := parseOwnerID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	report, err := s.reportingSvc.GetUnifiedReport(c.Request.Context(), ownerID, c.Param("month"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) GetReportConsistency(c *gin.Context) {
	ownerID, err := parseOwnerID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	report, err := s.reportingSvc.GetUnifiedReport(c.Request.Context(), ownerID, c.Param("month"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, consistency.Check(report))
}

// InvalidateReports drops cached reports for the owner. The optional
// month query parameter narrows eviction to a single month.
func (s *Server) InvalidateReports(c *gin.Context) {
	ownerID, err := parseOwnerID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.reportingSvc.Invalidate(ownerID, c.Query("month")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
