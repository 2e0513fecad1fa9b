package fake

// pt-BR word pools. The generated data only has to look plausible on a
// dashboard, not be exhaustive.

var firstNames = []string{
	"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Clara", "Daniel", "Eduardo",
	"Fernanda", "Gabriel", "Gustavo", "Helena", "Isabela", "João", "Juliana",
	"Larissa", "Leonardo", "Letícia", "Lucas", "Luiza", "Marcos", "Mariana",
	"Mateus", "Natália", "Paulo", "Pedro", "Rafael", "Renata", "Ricardo",
	"Rodrigo", "Sofia", "Thiago", "Vinícius", "Vitória", "Yasmin",
}

var lastNames = []string{
	"Almeida", "Alves", "Araújo", "Barbosa", "Cardoso", "Carvalho", "Castro",
	"Costa", "Dias", "Fernandes", "Ferreira", "Gomes", "Lima", "Lopes",
	"Martins", "Melo", "Mendes", "Monteiro", "Moreira", "Nascimento",
	"Oliveira", "Pereira", "Ribeiro", "Rocha", "Rodrigues", "Santos",
	"Silva", "Souza", "Teixeira", "Vieira",
}

var cityNames = []string{
	"São Paulo", "Campinas", "Santos", "Guarulhos", "Osasco", "Sorocaba",
	"Ribeirão Preto", "São José dos Campos", "Santo André", "Jundiaí",
	"Piracicaba", "Bauru", "Franca", "Taubaté", "Limeira", "Barueri",
	"Diadema", "Mogi das Cruzes", "Americana", "Araraquara", "Itu",
	"São Caetano do Sul", "Indaiatuba", "Cotia", "Valinhos",
}

var neighborhoods = []string{
	"Centro", "Jardim Paulista", "Vila Mariana", "Moema", "Pinheiros",
	"Vila Madalena", "Tatuapé", "Santana", "Bela Vista", "Liberdade",
	"Itaim Bibi", "Perdizes", "Lapa", "Brooklin", "Ipiranga", "Mooca",
	"Jardim América", "Vila Olímpia", "Butantã", "Saúde",
}

var stateAbbrevs = []string{
	"AC", "AL", "AM", "AP", "BA", "CE", "DF", "ES", "GO", "MA", "MG", "MS",
	"MT", "PA", "PB", "PE", "PI", "PR", "RJ", "RN", "RO", "RR", "RS", "SC",
	"SE", "SP", "TO",
}

var streetTypes = []string{"Rua", "Avenida", "Travessa", "Alameda", "Praça"}

var streetNames = []string{
	"das Flores", "dos Ipês", "das Acácias", "São João", "Santa Cecília",
	"XV de Novembro", "Sete de Setembro", "Tiradentes", "Dom Pedro II",
	"Getúlio Vargas", "Barão do Rio Branco", "das Palmeiras", "do Comércio",
	"Santos Dumont", "Marechal Deodoro", "da Independência",
}

var companyWords = []string{
	"Sabor", "Tempero", "Forno", "Brasa", "Chama", "Colher", "Panela",
	"Grão", "Fogão", "Mesa", "Prato", "Cozinha",
}

var companySuffixes = []string{
	"Ltda", "ME", "S.A.", "e Filhos", "Comércio de Alimentos", "Gastronomia",
}

var emailDomains = []string{
	"gmail.com", "hotmail.com", "outlook.com", "yahoo.com.br", "uol.com.br",
	"terra.com.br", "bol.com.br",
}
