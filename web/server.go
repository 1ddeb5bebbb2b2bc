package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/ragetools/shader_catalog_browser/shader"
)

var serverCatalog *shader.Catalog

// StartServer publishes one loaded catalog over http. The catalog is
// read only, so handlers need no synchronization.
func StartServer(addr string, c *shader.Catalog) error {
	serverCatalog = c

	r := mux.NewRouter()
	r.HandleFunc("/json/shaders", HandlerAjaxShaders)
	r.HandleFunc("/json/shader/{name}", HandlerAjaxShader)
	r.HandleFunc("/json/shader/{name}/basename", HandlerAjaxShaderBaseName)
	r.HandleFunc("/dump/shader/{name}", HandlerDumpShaderYaml)
	r.HandleFunc("/text/shader/{name}", HandlerTextShader)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v with %d shaders", addr, c.Len())

	return http.ListenAndServe(addr, h)
}
