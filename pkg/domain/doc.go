// Package domain contains the catalog entities shared across the application:
// the UN M49 geographic hierarchy, countries or areas, and the UNESCO heritage
// sites inscribed against them. The types are free of infrastructure concerns
// so storage, service and transport layers can all depend on them.
package domain
