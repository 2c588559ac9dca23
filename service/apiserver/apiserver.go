package apiserver

import (
	"sync"

	"github.com/labstack/echo"
)

// APIServer provides the json rpc query service of the token
type APIServer struct {
	sync.Mutex
	e      *echo.Echo
	subMap map[string]*JRPCSub
}

// NewAPIServer returns a APIServer
func NewAPIServer() *APIServer {
	s := &APIServer{
		e:      echo.New(),
		subMap: map[string]*JRPCSub{},
	}
	s.e.HideBanner = true
	return s
}
