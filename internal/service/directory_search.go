package service

import (
	"crypto/tls"
	"time"

	"ops-portal-backend/internal/config"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryEntry is the subset of corporate directory attributes surfaced to
// the portal's people search.
type DirectoryEntry struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	Mail        string `json:"mail"`
	Mobile      string `json:"mobile"`
	Title       string `json:"title"`
	Department  string `json:"department"`
}

// ldapClient is the subset of the LDAP connection the search uses. Dialing
// goes through dialLDAP so tests can substitute a fake connection.
type ldapClient interface {
	Bind(username, password string) error
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
	SetTimeout(d time.Duration)
	Close() error
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// DirectorySearchService looks up people in the company LDAP directory.
// This is read-only convenience data; authorization never consults it.
type DirectorySearchService struct {
	cfg *config.Config
}

// NewDirectorySearchService creates a new directory search service
func NewDirectorySearchService(cfg *config.Config) *DirectorySearchService {
	return &DirectorySearchService{cfg: cfg}
}

// SearchByName searches directory entries by display name prefix
func (s *DirectorySearchService) SearchByName(name string) ([]DirectoryEntry, error) {
	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(displayName=" + ldap.EscapeFilter(name) + "*)"
	attrs := []string{"displayName", "mail", "mobile", "title", "department"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, DirectoryEntry{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			Mail:        e.GetAttributeValue("mail"),
			Mobile:      e.GetAttributeValue("mobile"),
			Title:       e.GetAttributeValue("title"),
			Department:  e.GetAttributeValue("department"),
		})
	}

	return out, nil
}
