// Package credentials loads database login details and builds driver DSNs.
package credentials

import (
	"fmt"
	"net/url"
	"os"

	"github.com/mailru/easyjson"
)

// Credentials describe how to reach the ION database. If DSN is set it is
// used verbatim; otherwise a connection URL is assembled from the other
// fields. Driver defaults to sqlserver, which is what ION installations
// run on.
//
//easyjson:json
type Credentials struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
	DSN      string `json:"dsn,omitempty"`
}

// Read loads credentials from the JSON file at path.
func Read(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}
	c := &Credentials{}
	if err := easyjson.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("credentials %s: %w", path, err)
	}
	if c.Driver == "" {
		c.Driver = "sqlserver"
	}
	return c, nil
}

// ConnString builds the connection string for the configured driver.
func (c *Credentials) ConnString() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}
	switch c.Driver {
	case "sqlserver":
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(c.Username, c.Password),
			Host:     c.hostport(),
			RawQuery: url.Values{"database": {c.Database}}.Encode(),
		}
		return u.String(), nil
	case "postgres":
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.Username, c.Password),
			Host:   c.hostport(),
			Path:   "/" + c.Database,
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("credentials: unsupported driver %q", c.Driver)
	}
}

// hostport omits the port component when none is configured, leaving the
// driver to pick its default.
func (c *Credentials) hostport() string {
	if c.Port == 0 {
		return c.Host
	}
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
