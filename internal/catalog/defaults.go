package catalog

// DefaultExemplars is written to disk when the exemplar table is missing.
func DefaultExemplars() ExemplarSet {
	set := ExemplarSet{Examples: make(map[string][]string)}
	add := func(intent string, examples ...string) {
		set.Intents = append(set.Intents, intent)
		set.Examples[intent] = examples
	}

	add("greeting",
		"hello", "hi", "hey", "good morning", "good evening",
		"hola", "bonjour", "ciao", "hallo", "olá")
	add("farewell",
		"goodbye", "bye", "see you", "have a nice day", "take care",
		"adiós", "au revoir", "arrivederci", "auf wiedersehen", "adeus")
	add("help",
		"help", "I need assistance", "can you help me", "support needed",
		"ayuda", "necesito ayuda", "aide", "j'ai besoin d'aide",
		"aiuto", "ho bisogno di aiuto", "hilfe", "ich brauche hilfe", "ajuda", "preciso de ajuda")
	add("product_info",
		"product information", "tell me about your products", "what do you sell",
		"información del producto", "informations sur le produit",
		"informazioni sul prodotto", "produktinformation", "informações do produto")
	add("pricing",
		"how much does it cost", "what are your prices", "pricing plans",
		"cuánto cuesta", "combien ça coûte", "quanto costa", "wie viel kostet das", "quanto custa")
	add("contact",
		"how can I contact you", "I want to talk to a person", "customer service phone number",
		"quiero hablar con una persona", "comment vous contacter", "come posso contattarvi",
		"wie kann ich sie erreichen", "como entrar em contato")
	add("technical_support",
		"the app is not working", "I found a bug", "I get an error", "technical problem",
		"la aplicación no funciona", "l'application ne marche pas", "l'app non funziona",
		"die app funktioniert nicht", "o aplicativo não funciona")

	return set
}

// DefaultResponses is written to disk when the response table is missing.
func DefaultResponses() ResponseTable {
	table := ResponseTable{Templates: make(map[string]Templates)}
	add := func(intent string, pairs ...string) {
		t := Templates{Text: make(map[string]string)}
		for i := 0; i+1 < len(pairs); i += 2 {
			t.Languages = append(t.Languages, pairs[i])
			t.Text[pairs[i]] = pairs[i+1]
		}
		table.Intents = append(table.Intents, intent)
		table.Templates[intent] = t
	}

	add("greeting",
		"en", "Hello! How can I assist you today?",
		"es", "¡Hola! ¿Cómo puedo ayudarte hoy?",
		"fr", "Bonjour! Comment puis-je vous aider aujourd'hui?",
		"de", "Hallo! Wie kann ich Ihnen heute helfen?",
		"it", "Ciao! Come posso aiutarti oggi?",
		"pt", "Olá! Como posso ajudá-lo hoje?")
	add("farewell",
		"en", "Goodbye! Have a great day!",
		"es", "¡Adiós! ¡Que tengas un excelente día!",
		"fr", "Au revoir! Passez une excellente journée!",
		"de", "Auf Wiedersehen! Haben Sie einen schönen Tag!",
		"it", "Arrivederci! Buona giornata!",
		"pt", "Adeus! Tenha um ótimo dia!")
	add("help",
		"en", "I'm here to help! Please let me know what you need assistance with.",
		"es", "¡Estoy aquí para ayudar! Por favor, dime en qué necesitas ayuda.",
		"fr", "Je suis là pour vous aider! Dites-moi ce dont vous avez besoin.",
		"de", "Ich bin hier um zu helfen! Bitte lassen Sie mich wissen, wobei Sie Hilfe benötigen.",
		"it", "Sono qui per aiutare! Per favore, fammi sapere con cosa hai bisogno di assistenza.",
		"pt", "Estou aqui para ajudar! Por favor, me diga com o que você precisa de ajuda.")
	add("product_info",
		"en", "I'd be happy to tell you about our products. What specific information are you looking for?",
		"es", "Me complace informarte sobre nuestros productos. ¿Qué información específica buscas?",
		"fr", "Je serai ravi de vous parler de nos produits. Quelle information spécifique recherchez-vous?",
		"de", "Ich informiere Sie gerne über unsere Produkte. Welche spezifischen Informationen suchen Sie?",
		"it", "Sarò felice di parlarti dei nostri prodotti. Quali informazioni specifiche stai cercando?",
		"pt", "Ficarei feliz em falar sobre nossos produtos. Que informação específica você está procurando?")
	add("pricing",
		"en", "Our pricing plans start at $9.99/month for the basic package. We also offer premium plans at $19.99/month and enterprise solutions starting at $49.99/month. Would you like more details about any specific plan?",
		"es", "Nuestros planes de precios comienzan en $9.99/mes para el paquete básico. También ofrecemos planes premium a $19.99/mes y soluciones empresariales a partir de $49.99/mes. ¿Te gustaría más detalles sobre algún plan específico?",
		"fr", "Nos forfaits commencent à 9,99$/mois pour le forfait de base. Nous proposons également des forfaits premium à 19,99$/mois et des solutions d'entreprise à partir de 49,99$/mois. Souhaitez-vous plus de détails sur un forfait spécifique?",
		"de", "Unsere Preispläne beginnen bei 9,99$/Monat für das Basispaket. Wir bieten auch Premium-Pläne für 19,99$/Monat und Unternehmenslösungen ab 49,99$/Monat an. Möchten Sie weitere Details zu einem bestimmten Plan?",
		"it", "I nostri piani tariffari partono da $9,99/mese per il pacchetto base. Offriamo anche piani premium a $19,99/mese e soluzioni aziendali a partire da $49,99/mese. Desideri maggiori dettagli su un piano specifico?",
		"pt", "Nossos planos de preços começam em $9,99/mês para o pacote básico. Também oferecemos planos premium a $19,99/mês e soluções empresariais a partir de $49,99/mês. Gostaria de mais detalhes sobre algum plano específico?")
	add("contact",
		"en", "You can reach our customer support team at support@example.com or call us at 1-800-123-4567. Our support hours are Monday to Friday, 9 AM to 6 PM EST.",
		"es", "Puedes contactar a nuestro equipo de atención al cliente en support@example.com o llamarnos al 1-800-123-4567. Nuestro horario de atención es de lunes a viernes, de 9 AM a 6 PM EST.",
		"fr", "Vous pouvez joindre notre équipe d'assistance à support@example.com ou nous appeler au 1-800-123-4567. Nos heures d'assistance sont du lundi au vendredi, de 9h à 18h EST.",
		"de", "Sie können unser Kundendienstteam unter support@example.com erreichen oder uns unter 1-800-123-4567 anrufen. Unsere Supportzeiten sind Montag bis Freitag, 9 bis 18 Uhr EST.",
		"it", "Puoi contattare il nostro team di supporto clienti all'indirizzo support@example.com o chiamarci al numero 1-800-123-4567. I nostri orari di supporto sono dal lunedì al venerdì, dalle 9 alle 18 EST.",
		"pt", "Você pode entrar em contato com nossa equipe de suporte ao cliente em support@example.com ou nos ligar em 1-800-123-4567. Nosso horário de suporte é de segunda a sexta-feira, das 9h às 18h EST.")
	add("technical_support",
		"en", "For technical issues, please try restarting the application first. If the problem persists, check our knowledge base at help.example.com or contact our technical support team at techsupport@example.com with details about your issue.",
		"es", "Para problemas técnicos, intenta reiniciar la aplicación primero. Si el problema persiste, consulta nuestra base de conocimientos en help.example.com o contacta a nuestro equipo de soporte técnico en techsupport@example.com con detalles sobre tu problema.",
		"fr", "Pour les problèmes techniques, veuillez d'abord essayer de redémarrer l'application. Si le problème persiste, consultez notre base de connaissances sur help.example.com ou contactez notre équipe de support technique à techsupport@example.com avec les détails de votre problème.",
		"de", "Bei technischen Problemen versuchen Sie bitte zunächst, die Anwendung neu zu starten. Wenn das Problem weiterhin besteht, schauen Sie in unsere Wissensdatenbank unter help.example.com oder kontaktieren Sie unser technisches Support-Team unter techsupport@example.com mit Details zu Ihrem Problem.",
		"it", "Per problemi tecnici, prova prima a riavviare l'applicazione. Se il problema persiste, consulta la nostra knowledge base su help.example.com o contatta il nostro team di supporto tecnico all'indirizzo techsupport@example.com con i dettagli del tuo problema.",
		"pt", "Para problemas técnicos, tente reiniciar o aplicativo primeiro. Se o problema persistir, verifique nossa base de conhecimento em help.example.com ou entre em contato com nossa equipe de suporte técnico em techsupport@example.com com detalhes sobre seu problema.")
	add(UnknownIntent,
		"en", "I'm not sure I understand. Could you please rephrase that?",
		"es", "No estoy seguro de entender. ¿Podrías reformular eso?",
		"fr", "Je ne suis pas sûr de comprendre. Pourriez-vous reformuler?",
		"de", "Ich bin mir nicht sicher, ob ich das verstehe. Könnten Sie das bitte umformulieren?",
		"it", "Non sono sicuro di capire. Potresti riformulare?",
		"pt", "Não tenho certeza se entendi. Você poderia reformular isso?")

	return table
}

// DefaultVariants is written to disk when the variant table is missing.
// The first variant of every intent equals its canonical "en" template.
func DefaultVariants() VariantTable {
	return VariantTable{
		"greeting": {
			"Hello! How can I assist you today?",
			"Hi there! What can I help you with?",
			"Welcome! How may I be of service?",
			"Greetings! What brings you here today?",
			"Hello! I'm your virtual assistant. How can I help?",
		},
		"farewell": {
			"Goodbye! Have a great day!",
			"Farewell! Feel free to come back if you have more questions.",
			"Take care! It was nice chatting with you.",
			"Goodbye! I hope I was able to help you today.",
			"See you next time! Have a wonderful day ahead.",
		},
		"help": {
			"I'm here to help! Please let me know what you need assistance with.",
			"I'd be happy to help you. What specific issue are you facing?",
			"How can I assist you today? Please provide more details about your question.",
			"I'm ready to help! Could you tell me more about what you need?",
			"I'm here to provide support. What can I help you with specifically?",
		},
		"product_info": {
			"I'd be happy to tell you about our products. What specific information are you looking for?",
			"Our products offer a range of features. What would you like to know more about?",
			"We have several products that might interest you. Any specific aspect you'd like to explore?",
			"I can provide information about our products and services. What details are you interested in?",
			"Our product lineup is designed to meet various needs. What particular information would help you?",
		},
		"pricing": {
			"Our pricing plans start at $9.99/month for the basic package. We also offer premium plans at $19.99/month and enterprise solutions starting at $49.99/month. Would you like more details about any specific plan?",
			"Our pricing plans are designed to fit your needs. What specific pricing plan are you interested in?",
			"We offer a range of pricing options. What would you like to know more about our pricing?",
			"Our pricing is competitive. What specific pricing details are you interested in?",
			"We have several pricing options. What particular pricing information would help you?",
		},
		"contact": {
			"You can reach our customer support team at support@example.com or call us at 1-800-123-4567. Our support hours are Monday to Friday, 9 AM to 6 PM EST.",
			"Our customer support team is available to assist you. How can we help you reach us?",
			"We're here to help you. What's the best way to contact you?",
			"Our contact information is always available. How would you like to reach us?",
			"We're always ready to assist you. How can we help you get in touch with us?",
		},
		"technical_support": {
			"For technical issues, please try restarting the application first. If the problem persists, check our knowledge base at help.example.com or contact our technical support team at techsupport@example.com with details about your issue.",
			"We're here to help you with any technical issues you're facing. What's the best way to assist you?",
			"Our technical support team is available to assist you. How can we help you with your technical issue?",
			"We're always ready to assist you. How can we help you with your technical issue?",
			"We're here to help you. How can we assist you with your technical issue?",
		},
		UnknownIntent: {
			"I'm not sure I understand. Could you please rephrase that?",
			"I didn't quite catch that. Can you explain in different words?",
			"I'm having trouble understanding your request. Could you provide more details?",
			"Could you clarify what you're looking for? I want to make sure I help you correctly.",
			"I'm not sure what you're asking for. Could you try asking in a different way?",
		},
	}
}
