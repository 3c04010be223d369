package utils

import jsoniter "github.com/json-iterator/go"

// Json é a instância compartilhada do json-iterator, compatível com encoding/json
var Json = jsoniter.ConfigCompatibleWithStandardLibrary
