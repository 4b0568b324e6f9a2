package gpxitinerary

import (
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridgeline-labs/gpx-to-itinerary/config"
	"github.com/ridgeline-labs/gpx-to-itinerary/formatter"
	"github.com/ridgeline-labs/gpx-to-itinerary/itinerary"
	"github.com/ridgeline-labs/gpx-to-itinerary/trip"
)

// departureLayouts are the accepted departure formats: RFC 3339 and the
// value an HTML datetime-local input submits.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func parseDeparture(s string) (*time.Time, error) {
	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized departure time %q", s)
}

func handleIndex(c *gin.Context) {
	renderIndex(c, http.StatusOK, "")
}

// handleConvert accepts a GPX upload plus form options and responds with
// the itinerary as an HTML page, raw Markdown, or escaped HTML source.
func handleConvert(cfg config.AppConfig, collector *Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.Server.MaxUploadBytes())

		file, header, err := c.Request.FormFile("file")
		if err != nil {
			collector.ConversionErrors.WithLabelValues("upload").Inc()
			renderIndex(c, http.StatusBadRequest, "no file selected")
			return
		}
		defer file.Close()

		if header.Filename == "" || !strings.EqualFold(filepath.Ext(header.Filename), ".gpx") {
			collector.ConversionErrors.WithLabelValues("upload").Inc()
			renderIndex(c, http.StatusBadRequest, "only .gpx files are accepted")
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			collector.ConversionErrors.WithLabelValues("upload").Inc()
			renderIndex(c, http.StatusBadRequest, "upload failed or file too large")
			return
		}
		collector.UploadSize.Observe(float64(len(data)))

		opts := cfg.Trip.TripOptions()
		opts.Imperial = c.PostForm("metric") != "on"
		opts.IgnoreTimes = c.PostForm("ignore_times") == "on"
		opts.DisplayCoordinates = c.PostForm("coordinates") == "on"
		if s := c.PostForm("speed"); s != "" {
			speed, err := strconv.ParseFloat(s, 64)
			if err != nil || speed <= 0 {
				renderIndex(c, http.StatusBadRequest, "speed must be a positive number")
				return
			}
			opts.Speed = speed
		}
		if s := c.PostForm("departure"); s != "" {
			dep, err := parseDeparture(s)
			if err != nil {
				renderIndex(c, http.StatusBadRequest, err.Error())
				return
			}
			opts.DepartAt = dep
		}

		t, err := trip.Parse(data)
		if err != nil {
			collector.ConversionErrors.WithLabelValues("parse").Inc()
			status := http.StatusBadRequest
			if !errors.Is(err, trip.ErrNoData) {
				status = http.StatusUnprocessableEntity
			}
			renderIndex(c, status, fmt.Sprintf("%s: %v", header.Filename, err))
			return
		}

		start := time.Now()
		it, err := itinerary.Build(t, opts)
		collector.BuildDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			collector.ConversionErrors.WithLabelValues("build").Inc()
			renderIndex(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		collector.Conversions.Inc()

		b := formatter.NewBuilder(opts.Imperial, opts.DisplayCoordinates)
		md := b.BuildMarkdown(it)

		switch c.PostForm("output") {
		case "markdown":
			c.Data(http.StatusOK, "text/html; charset=utf-8",
				[]byte("<pre>"+html.EscapeString(string(md))+"</pre>"))
			return
		case "htmlcode":
			frag, err := b.BuildHTML(it)
			if err != nil {
				collector.ConversionErrors.WithLabelValues("build").Inc()
				renderIndex(c, http.StatusInternalServerError, err.Error())
				return
			}
			c.Data(http.StatusOK, "text/html; charset=utf-8",
				[]byte("<pre>"+html.EscapeString(string(frag))+"</pre>"))
			return
		}

		frag, err := b.BuildHTML(it)
		if err != nil {
			collector.ConversionErrors.WithLabelValues("build").Inc()
			renderIndex(c, http.StatusInternalServerError, err.Error())
			return
		}
		renderResult(c, it.Name, frag)
	}
}
