package utils

import (
	"strings"

	"codcoz/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// GetCompanyID reads and validates the :companyId path parameter.
func GetCompanyID(c echo.Context) (string, apierror.ErrorResponse) {
	id := strings.TrimSpace(c.Param("companyId"))
	if !IsCompanyIDValid(id) {
		return "", apierror.InvalidCompanyIDError
	}
	return id, nil
}

// GetPathID reads a non-blank path parameter.
func GetPathID(c echo.Context, name string) (string, apierror.ErrorResponse) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" || strings.ContainsAny(id, "/?#") {
		return "", apierror.InvalidIDError
	}
	return id, nil
}
