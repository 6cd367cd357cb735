package handlers

import "hcdigital.dev/web/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
    GA4MeasurementID string // e.g. G-XXXXXXXXXX
}

// AnalyticsFromConfig builds Analytics from the loaded configuration.
func AnalyticsFromConfig(cfg config.AnalyticsConfig) Analytics {
    return Analytics{GA4MeasurementID: cfg.GA4MeasurementID}
}

// Enabled reports whether any tag should be emitted.
func (a Analytics) Enabled() bool { return a.GA4MeasurementID != "" }
