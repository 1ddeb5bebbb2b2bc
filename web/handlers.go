package web

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ragetools/shader_catalog_browser/shader"
	"github.com/ragetools/shader_catalog_browser/utils"
	"github.com/ragetools/shader_catalog_browser/webutils"
)

func HandlerAjaxShaders(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, serverCatalog.Filenames())
}

func findRequestShader(r *http.Request) (*shader.Shader, string, error) {
	name := mux.Vars(r)["name"]
	sh := serverCatalog.Find(name)
	if sh == nil {
		return nil, name, errors.Errorf("Shader %q not found", name)
	}
	return sh, name, nil
}

func HandlerAjaxShader(w http.ResponseWriter, r *http.Request) {
	sh, _, err := findRequestShader(r)
	if err != nil {
		webutils.WriteNotFound(w, err)
		return
	}
	webutils.WriteJson(w, serverCatalog.Record(sh))
}

func HandlerAjaxShaderBaseName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	baseName, ok := serverCatalog.FindBaseName(name)
	if !ok {
		webutils.WriteNotFound(w, errors.Errorf("Shader %q not found", name))
		return
	}
	webutils.WriteJson(w, map[string]string{"base_name": baseName})
}

func HandlerDumpShaderYaml(w http.ResponseWriter, r *http.Request) {
	sh, name, err := findRequestShader(r)
	if err != nil {
		webutils.WriteNotFound(w, err)
		return
	}
	data, err := yaml.Marshal(serverCatalog.Record(sh))
	if err != nil {
		webutils.WriteError(w, errors.Wrapf(err, "Failed to marshal shader %q", name))
		return
	}
	webutils.WriteYamlFile(w, data, strings.TrimSuffix(name, ".sps"))
}

func HandlerTextShader(w http.ResponseWriter, r *http.Request) {
	sh, _, err := findRequestShader(r)
	if err != nil {
		webutils.WriteNotFound(w, err)
		return
	}
	webutils.WriteText(w, utils.SDump(serverCatalog.Record(sh)))
}
