package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"tourmap/internal/models/request_models"
	"tourmap/pkg/utils"
)

// pathID parses an integer path parameter. Anything that is not a positive
// integer cannot name a record, so it is answered with 404.
func pathID(c *gin.Context, name, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusNotFound, notFound)
		return 0, false
	}
	return uint(id), true
}

// bind decodes the body with b and reports field level problems. An empty
// body is validated as an empty payload. JSON bodies are also checked for
// explicit nulls on fields that cannot hold one.
func bind(c *gin.Context, b binding.Binding, obj any) bool {
	var err error
	if b == binding.JSON {
		err = c.ShouldBindBodyWith(obj, binding.JSON)
	} else {
		err = c.ShouldBindWith(obj, b)
	}
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.RespondError(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		return false
	}

	verr := utils.NewValidationError()
	if err != nil {
		verr = utils.TranslateBindingError(err)
	}

	if nn, ok := obj.(request_models.NotNullable); ok && b == binding.JSON {
		if body, ok := c.Get(gin.BodyBytesKey); ok {
			raw, _ := body.([]byte)
			for _, field := range request_models.ExplicitNulls(raw, nn.NotNullFields()) {
				verr.Fields[field] = []string{utils.MsgNotNull}
			}
		}
	}

	if verr.HasErrors() {
		utils.RespondValidationError(c, verr)
		return false
	}
	return true
}

func isForm(c *gin.Context) bool {
	switch c.ContentType() {
	case binding.MIMEMultipartPOSTForm, binding.MIMEPOSTForm:
		return true
	}
	return false
}
