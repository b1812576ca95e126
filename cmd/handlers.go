package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (svc *serviceContext) itemHandler(c *gin.Context) {
	cl := clientContext{}
	cl.init(svc, c)

	i := itemContext{}
	i.init(svc, &cl)

	cl.logRequest()
	resp := i.handleItemRequest()
	cl.logResponse(resp)

	if resp.err != nil {
		c.String(resp.status, resp.err.Error())
		return
	}

	c.Data(resp.status, resp.contentType, resp.data)
}

func (svc *serviceContext) ignoreHandler(c *gin.Context) {
}

func (svc *serviceContext) versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, svc.version)
}

func (svc *serviceContext) healthCheckHandler(c *gin.Context) {
	cl := clientContext{}
	cl.init(svc, c)

	i := itemContext{}
	i.init(svc, &cl)

	pingErr := i.folioLogin()

	// build response

	internalServiceError := false

	type hcResp struct {
		Healthy bool   `json:"healthy"`
		Message string `json:"message,omitempty"`
	}

	hcFolio := hcResp{Healthy: true}
	if pingErr != nil {
		internalServiceError = true
		hcFolio = hcResp{Healthy: false, Message: pingErr.Error()}
	}

	hcMap := make(map[string]hcResp)
	hcMap["folio"] = hcFolio

	hcStatus := http.StatusOK
	if internalServiceError == true {
		hcStatus = http.StatusInternalServerError
	}

	c.JSON(hcStatus, hcMap)
}
