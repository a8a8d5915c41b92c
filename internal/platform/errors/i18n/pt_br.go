package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeUnknown: "Algo deu errado",

		CodeInvalidRequest:   "Não foi possível ler a requisição",
		CodePayloadTooLarge:  "A requisição é grande demais",
		CodeUnsupportedMedia: "As requisições devem ser enviadas em JSON",

		CodeInvalidStat:       "{{.Stat}} deve ser um número não negativo",
		CodeInvalidDamage:     "O dano mínimo não pode exceder o dano máximo",
		CodeUnknownStat:       "Atributo desconhecido",
		CodeUnknownCombatType: "Tipo de combate desconhecido",
		CodeUnknownDirection:  "Direção de ataque desconhecida",
		CodeUnknownMetric:     "Métrica de gráfico desconhecida",
		CodeUnknownLimiter:    "Limitador de velocidade desconhecido",
		CodeInvalidRange:      "O intervalo do gráfico não pode ser amostrado",

		CodeMalformedToken: "Este link de compartilhamento é inválido ou está corrompido",

		CodeImportEmpty:       "Cole o texto da ficha de atributos para importar",
		CodeImportUnknownKind: "Importações devem ser uma build ou um inimigo",

		CodeSessionUnknownAction:   "Ação de sessão desconhecida",
		CodeSessionIndexOutOfRange: "Não há registro nessa posição",
		CodeSessionRequiredStat:    "Este atributo não pode ser apagado",
		CodeSessionEmptyToken:      "Uma sessão salva precisa de um token de compartilhamento",
		CodeSessionNotFound:        "Sessão salva não encontrada",
	},
}
