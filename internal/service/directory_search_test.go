package service

import (
	"crypto/tls"
	"errors"
	"testing"
	"time"

	"ops-portal-backend/internal/config"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
)

// fakeLDAPClient implements ldapClient for testing
type fakeLDAPClient struct {
	bindErr           error
	searchErr         error
	searchRes         *ldap.SearchResult
	receivedSearchReq *ldap.SearchRequest

	setTimeoutCalled bool
	timeoutValue     time.Duration

	closed bool
}

func (f *fakeLDAPClient) Bind(username, password string) error {
	return f.bindErr
}

func (f *fakeLDAPClient) Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error) {
	f.receivedSearchReq = searchRequest
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.searchRes != nil {
		return f.searchRes, nil
	}
	return &ldap.SearchResult{Entries: []*ldap.Entry{}}, nil
}

func (f *fakeLDAPClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLDAPClient) SetTimeout(d time.Duration) {
	f.setTimeoutCalled = true
	f.timeoutValue = d
}

func makeDirectoryConfig() *config.Config {
	return &config.Config{
		LDAPHost:               "ldap.example.com",
		LDAPPort:               "636",
		LDAPBindDN:             "CN=Portal Service,OU=Service Accounts,DC=example,DC=com",
		LDAPBindPW:             "SuperSecret123",
		LDAPBaseDN:             "DC=example,DC=com",
		LDAPInsecureSkipVerify: true,
		LDAPTimeoutSec:         5,
	}
}

func TestDirectorySearch_DialError(t *testing.T) {
	orig := dialLDAP
	defer func() { dialLDAP = orig }()

	dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
		return nil, errors.New("dial failed")
	}

	svc := NewDirectorySearchService(makeDirectoryConfig())
	res, err := svc.SearchByName("dana")
	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "dial failed")
}

func TestDirectorySearch_BindError(t *testing.T) {
	orig := dialLDAP
	defer func() { dialLDAP = orig }()

	fc := &fakeLDAPClient{bindErr: errors.New("bind failed")}
	dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
		return fc, nil
	}

	cfg := makeDirectoryConfig()
	svc := NewDirectorySearchService(cfg)
	res, err := svc.SearchByName("dana")
	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "bind failed")
	assert.True(t, fc.closed, "client should be closed via defer")
	assert.True(t, fc.setTimeoutCalled, "SetTimeout should be called")
	assert.Equal(t, time.Duration(cfg.LDAPTimeoutSec)*time.Second, fc.timeoutValue)
}

func TestDirectorySearch_SearchError(t *testing.T) {
	orig := dialLDAP
	defer func() { dialLDAP = orig }()

	fc := &fakeLDAPClient{
		searchErr: errors.New("search failed"),
	}
	dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
		return fc, nil
	}

	svc := NewDirectorySearchService(makeDirectoryConfig())
	res, err := svc.SearchByName("dana")
	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "search failed")
	assert.NotNil(t, fc.receivedSearchReq, "Search should receive a request")
}

func TestDirectorySearch_SuccessMappingAndFilterEscaping(t *testing.T) {
	entry := &ldap.Entry{
		DN: "CN=Dana Whitfield,OU=Users,DC=example,DC=com",
		Attributes: []*ldap.EntryAttribute{
			{Name: "displayName", Values: []string{"Dana Whitfield"}},
			{Name: "mail", Values: []string{"dana@example.com"}},
			{Name: "mobile", Values: []string{"+1-555-0134"}},
			{Name: "title", Values: []string{"Project Manager"}},
			{Name: "department", Values: []string{"Field Ops"}},
		},
	}

	tests := []struct {
		name  string
		query string
	}{
		{name: "Plain name", query: "dana"},
		{name: "Name with filter metacharacters", query: "dana (w*)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := dialLDAP
			defer func() { dialLDAP = orig }()

			fc := &fakeLDAPClient{
				searchRes: &ldap.SearchResult{
					Entries: []*ldap.Entry{entry},
				},
			}
			dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
				return fc, nil
			}

			cfg := makeDirectoryConfig()
			svc := NewDirectorySearchService(cfg)

			out, err := svc.SearchByName(tt.query)
			assert.NoError(t, err)
			assert.Len(t, out, 1)
			person := out[0]
			assert.Equal(t, entry.DN, person.DN)
			assert.Equal(t, "Dana Whitfield", person.DisplayName)
			assert.Equal(t, "dana@example.com", person.Mail)
			assert.Equal(t, "+1-555-0134", person.Mobile)
			assert.Equal(t, "Project Manager", person.Title)
			assert.Equal(t, "Field Ops", person.Department)

			if assert.NotNil(t, fc.receivedSearchReq) {
				assert.Equal(t, cfg.LDAPBaseDN, fc.receivedSearchReq.BaseDN)
				// the query value must be escaped before the wildcard suffix
				assert.Equal(t, "(displayName="+ldap.EscapeFilter(tt.query)+"*)", fc.receivedSearchReq.Filter)
			}
		})
	}
}

func TestDirectorySearch_TimeoutZeroDoesNotSet(t *testing.T) {
	orig := dialLDAP
	defer func() { dialLDAP = orig }()

	fc := &fakeLDAPClient{}
	dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
		return fc, nil
	}

	cfg := makeDirectoryConfig()
	cfg.LDAPTimeoutSec = 0
	svc := NewDirectorySearchService(cfg)

	out, err := svc.SearchByName("dana")
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, fc.setTimeoutCalled, "SetTimeout should not be called when timeout is zero")
}
