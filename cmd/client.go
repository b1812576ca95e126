package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type clientOpts struct {
	format    string // "xml" (default) or "json" passthrough
	replace   bool   // controls whether call number prefix/suffix replacement rules are applied
	transform bool   // controls whether output is transformed to the Alma item record shape
}

type clientContext struct {
	reqID  string       // internally generated
	start  time.Time    // internally set
	opts   clientOpts   // options set by client
	ginCtx *gin.Context // gin context
}

func boolOptionWithFallback(opt string, fallback bool) bool {
	var err error
	var val bool

	if val, err = strconv.ParseBool(opt); err != nil {
		val = fallback
	}

	return val
}

func (c *clientContext) init(svc *serviceContext, ctx *gin.Context) {
	c.ginCtx = ctx

	c.start = time.Now()
	c.reqID = fmt.Sprintf("%08x", svc.randomSource.Uint32())

	c.opts.format = ctx.DefaultQuery("format", "xml")
	c.opts.replace = boolOptionWithFallback(ctx.Query("replace"), true)
	c.opts.transform = boolOptionWithFallback(ctx.Query("transform"), true)
}

func (c *clientContext) logRequest() {
	c.log("------------------------------[ NEW REQUEST ]------------------------------")

	query := ""
	if c.ginCtx.Request.URL.RawQuery != "" {
		query = fmt.Sprintf("?%s", c.ginCtx.Request.URL.RawQuery)
	}

	c.log("[REQUEST] %s %s%s", c.ginCtx.Request.Method, c.ginCtx.Request.URL.Path, query)
}

func (c *clientContext) logResponse(resp itemResponse) {
	msg := fmt.Sprintf("[RESPONSE] status: %d", resp.status)

	if resp.err != nil {
		msg = msg + fmt.Sprintf(", error: %s", resp.err.Error())
	}

	msg = msg + fmt.Sprintf(", elapsed: %d (ms)", int64(time.Since(c.start)/time.Millisecond))

	c.log("%s", msg)
}

func (c *clientContext) printf(prefix, format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)

	if prefix != "" {
		str = strings.Join([]string{prefix, str}, " ")
	}

	log.Printf("[%s] %s", c.reqID, str)
}

func (c *clientContext) log(format string, args ...interface{}) {
	c.printf("", format, args...)
}

func (c *clientContext) err(format string, args ...interface{}) {
	c.printf("ERROR:", format, args...)
}
