package i18n

var builtin = map[string]map[string]string{
	"es": es,
	"en": en,
	"fr": fr,
}

var es = map[string]string{
	"app.nombre":     "EduAventuras",
	"app.bienvenida": "Bienvenido",

	"nav.inicio":         "Inicio",
	"nav.materias":       "Materias",
	"nav.perfil":         "Perfil",
	"nav.dashboard":      "Dashboard",
	"nav.subir":          "Subir Recurso",
	"nav.usuarios":       "Usuarios",
	"nav.admin.materias": "Gestionar Materias",
	"nav.login":          "Iniciar Sesión",
	"nav.registro":       "Registrarse",
	"nav.logout":         "Cerrar Sesión",
	"nav.idioma":         "Idioma",

	"home.titulo":    "Aprende jugando",
	"home.subtitulo": "Explora materias y descarga recursos de estudio",

	"login.titulo":     "Iniciar Sesión",
	"login.email":      "Correo electrónico",
	"login.password":   "Contraseña",
	"login.recordarme": "Recordarme",
	"login.button":     "Iniciar Sesión",
	"login.olvido":     "¿Olvidaste tu contraseña?",
	"login.sin.cuenta": "¿No tienes cuenta? Regístrate",

	"auth.sesion.cerrada": "Sesión cerrada correctamente",

	"error.general":          "Ha ocurrido un error",
	"error.sesion.requerida": "Debes iniciar sesión para continuar",
	"error.sesion.expirada":  "Tu sesión ha expirado. Inicia sesión nuevamente",
	"error.conexion":         "Error de conexión. Por favor, intenta nuevamente.",
	"error.reintentar":       "Reintentar",
	"error.credenciales":     "Credenciales incorrectas",
	"error.no.encontrado":    "{recurso} no encontrado",
	"error.acceso.denegado":  "Acceso denegado: tu rol {rol} no tiene permisos para esta acción",
	"error.servidor":         "Error del servidor. Intenta más tarde",
	"error.datos.invalidos":  "Datos inválidos",
	"error.email.registrado": "El correo ya está registrado",
	"error.pagina":           "No pudimos mostrar esta página",

	"registro.titulo":              "Crear cuenta",
	"registro.nombre":              "Nombre",
	"registro.apellido":            "Apellido",
	"registro.email":               "Correo electrónico",
	"registro.password":            "Contraseña",
	"registro.confirmar":           "Confirmar contraseña",
	"registro.rol":                 "Soy",
	"registro.terminos":            "Acepto los términos y condiciones",
	"registro.button":              "Registrarse",
	"registro.exito":               "Registro exitoso. Ya puedes iniciar sesión",
	"registro.password.distintas":  "Las contraseñas no coinciden",
	"registro.terminos.requeridos": "Debes aceptar los términos y condiciones",

	"rol.ADMIN":      "Administrador",
	"rol.DOCENTE":    "Docente",
	"rol.ESTUDIANTE": "Estudiante",

	"materias.titulo":          "Materias",
	"materias.buscar":          "Buscar materias...",
	"materias.orden":           "Ordenar por",
	"materias.orden.nombre":    "Nombre",
	"materias.orden.recursos":  "Cantidad de recursos",
	"materias.vacio":           "No hay materias disponibles",
	"materias.recursos.uno":    "1 recurso",
	"materias.recursos.varios": "{n} recursos",
	"materias.ver":             "Ver recursos",

	"recursos.titulo":     "Recursos de {materia}",
	"recursos.buscar":     "Buscar recursos...",
	"recursos.vacio":      "Esta materia aún no tiene recursos",
	"recursos.descargar":  "Descargar",
	"recursos.eliminar":   "Eliminar",
	"recursos.eliminado":  "Recurso eliminado",
	"recursos.subido.por": "Subido por {nombre}",
	"recursos.descargas":  "{n} descargas",
	"recursos.recurso":    "Recurso",

	"subir.titulo":            "Subir Recurso",
	"subir.campo.titulo":      "Título",
	"subir.descripcion":       "Descripción",
	"subir.materia":           "Materia",
	"subir.materia.elegir":    "Selecciona una materia",
	"subir.archivo":           "Archivo PDF",
	"subir.button":            "Subir",
	"subir.exito":             "Recurso subido exitosamente",
	"subir.archivo.requerido": "Selecciona un archivo",
	"subir.archivo.pdf":       "Solo se permiten archivos PDF",
	"subir.archivo.grande":    "El archivo no debe superar {max}",

	"perfil.titulo":               "Mi Perfil",
	"perfil.nombre":               "Nombre",
	"perfil.apellido":             "Apellido",
	"perfil.biografia":            "Biografía",
	"perfil.materia.favorita":     "Materia favorita",
	"perfil.ninguna":              "Ninguna",
	"perfil.guardar":              "Guardar cambios",
	"perfil.actualizado":          "Perfil actualizado",
	"perfil.foto":                 "Foto de perfil",
	"perfil.foto.subir":           "Cambiar foto",
	"perfil.foto.eliminar":        "Eliminar foto",
	"perfil.foto.actualizada":     "Foto actualizada",
	"perfil.foto.eliminada":       "Foto eliminada",
	"perfil.foto.grande":          "La imagen no debe superar {max}",
	"perfil.foto.imagen":          "El archivo debe ser una imagen",
	"perfil.foto.requerida":       "Selecciona una imagen",
	"perfil.miembro.desde":        "Miembro desde {fecha}",
	"perfil.actividad":            "Actividad reciente",
	"perfil.sin.actividad":        "Sin actividad reciente",
	"perfil.ultima.actualizacion": "Última actualización: {fecha}",

	"dashboard.titulo":           "Panel de Administración",
	"dashboard.usuarios":         "Usuarios",
	"dashboard.materias":         "Materias",
	"dashboard.recursos":         "Recursos",
	"dashboard.descargas":        "Descargas",
	"dashboard.grafico.roles":    "Usuarios por rol",
	"dashboard.grafico.materias": "Recursos por materia",
	"dashboard.actividad":        "Actividad reciente",
	"dashboard.sin.actividad":    "Sin actividad reciente",
	"dashboard.reporte":          "Descargar reporte",
	"dashboard.subio":            "{nombre} subió {titulo}",

	"tiempo.ahora":   "Hace un momento",
	"tiempo.minutos": "Hace {n} min",
	"tiempo.horas":   "Hace {n} h",
	"tiempo.dias":    "Hace {n} días",

	"admin.materias.titulo":      "Gestionar Materias",
	"admin.materias.nueva":       "Nueva materia",
	"admin.materias.editar":      "Editar",
	"admin.materias.nombre":      "Nombre",
	"admin.materias.descripcion": "Descripción",
	"admin.materias.imagen":      "URL de imagen",
	"admin.materias.guardar":     "Guardar",
	"admin.materias.eliminar":    "Eliminar",
	"admin.materias.creada":      "Materia creada",
	"admin.materias.actualizada": "Materia actualizada",
	"admin.materias.eliminada":   "Materia eliminada",
	"admin.materias.reporte":     "Reporte PDF",
	"admin.materias.materia":     "Materia",

	"admin.usuarios.titulo":          "Gestionar Usuarios",
	"admin.usuarios.buscar":          "Buscar por nombre, email o rol...",
	"admin.usuarios.nombre":          "Nombre",
	"admin.usuarios.email":           "Email",
	"admin.usuarios.rol":             "Rol",
	"admin.usuarios.estado":          "Estado",
	"admin.usuarios.activo":          "Activo",
	"admin.usuarios.inactivo":        "Inactivo",
	"admin.usuarios.activar":         "Activar",
	"admin.usuarios.desactivar":      "Desactivar",
	"admin.usuarios.cambiar.rol":     "Cambiar rol",
	"admin.usuarios.eliminar":        "Eliminar",
	"admin.usuarios.rol.cambiado":    "Rol actualizado",
	"admin.usuarios.estado.cambiado": "Estado actualizado",
	"admin.usuarios.eliminado":       "Usuario eliminado",
	"admin.usuarios.propio":          "No puedes realizar esta acción sobre tu propia cuenta",
	"admin.usuarios.rol.invalido":    "Rol inválido",
	"admin.usuarios.usuario":         "Usuario",

	"recuperar.titulo":         "Recuperar contraseña",
	"recuperar.email":          "Correo electrónico",
	"recuperar.enviar":         "Enviar Enlace",
	"recuperar.enviado":        "Si el correo existe, recibirás un enlace para restablecer tu contraseña",
	"recuperar.enlace":         "Enlace de recuperación",
	"recuperar.token.invalido": "El enlace no es válido o ha expirado",
	"recuperar.nueva":          "Nueva contraseña",
	"recuperar.confirmar":      "Confirmar contraseña",
	"recuperar.restablecer":    "Restablecer",
	"recuperar.exito":          "Contraseña restablecida. Ya puedes iniciar sesión",

	"comun.buscar":             "Buscar",
	"comun.cancelar":           "Cancelar",
	"comun.guardar":            "Guardar",
	"comun.confirmar.eliminar": "¿Seguro que deseas eliminar?",
	"comun.acciones":           "Acciones",
	"comun.volver":             "Volver",

	"perfil.actividad.registro":      "Te uniste a EduAventuras",
	"perfil.actividad.actualizacion": "Actualizaste tu perfil",
	"dashboard.actividad.error":      "No se pudo cargar la actividad reciente",
	"dashboard.sin.materia":          "Sin materia",
}

var en = map[string]string{
	"app.nombre":     "EduAventuras",
	"app.bienvenida": "Welcome",

	"nav.inicio":         "Home",
	"nav.materias":       "Subjects",
	"nav.perfil":         "Profile",
	"nav.dashboard":      "Dashboard",
	"nav.subir":          "Upload Resource",
	"nav.usuarios":       "Users",
	"nav.admin.materias": "Manage Subjects",
	"nav.login":          "Login",
	"nav.registro":       "Sign up",
	"nav.logout":         "Logout",
	"nav.idioma":         "Language",

	"home.titulo":    "Learn by playing",
	"home.subtitulo": "Explore subjects and download study resources",

	"login.titulo":     "Login",
	"login.email":      "Email",
	"login.password":   "Password",
	"login.recordarme": "Remember me",
	"login.button":     "Login",
	"login.olvido":     "Forgot your password?",
	"login.sin.cuenta": "No account? Sign up",

	"auth.sesion.cerrada": "Logged out successfully",

	"error.general":          "An error occurred",
	"error.sesion.requerida": "Please log in to continue",
	"error.sesion.expirada":  "Your session has expired. Please log in again",
	"error.conexion":         "Connection error. Please try again.",
	"error.reintentar":       "Retry",
	"error.credenciales":     "Invalid credentials",
	"error.no.encontrado":    "{recurso} not found",
	"error.acceso.denegado":  "Access denied: your role {rol} is not allowed to do this",
	"error.servidor":         "Server error. Try again later",
	"error.datos.invalidos":  "Invalid data",
	"error.email.registrado": "That email is already registered",
	"error.pagina":           "We could not display this page",

	"registro.titulo":              "Create account",
	"registro.nombre":              "First name",
	"registro.apellido":            "Last name",
	"registro.email":               "Email",
	"registro.password":            "Password",
	"registro.confirmar":           "Confirm password",
	"registro.rol":                 "I am a",
	"registro.terminos":            "I accept the terms and conditions",
	"registro.button":              "Sign up",
	"registro.exito":               "Registration successful. You can now log in",
	"registro.password.distintas":  "Passwords do not match",
	"registro.terminos.requeridos": "You must accept the terms and conditions",

	"rol.ADMIN":      "Administrator",
	"rol.DOCENTE":    "Teacher",
	"rol.ESTUDIANTE": "Student",

	"materias.titulo":          "Subjects",
	"materias.buscar":          "Search subjects...",
	"materias.orden":           "Sort by",
	"materias.orden.nombre":    "Name",
	"materias.orden.recursos":  "Number of resources",
	"materias.vacio":           "No subjects available",
	"materias.recursos.uno":    "1 resource",
	"materias.recursos.varios": "{n} resources",
	"materias.ver":             "View resources",

	"recursos.titulo":     "{materia} resources",
	"recursos.buscar":     "Search resources...",
	"recursos.vacio":      "This subject has no resources yet",
	"recursos.descargar":  "Download",
	"recursos.eliminar":   "Delete",
	"recursos.eliminado":  "Resource deleted",
	"recursos.subido.por": "Uploaded by {nombre}",
	"recursos.descargas":  "{n} downloads",
	"recursos.recurso":    "Resource",

	"subir.titulo":            "Upload Resource",
	"subir.campo.titulo":      "Title",
	"subir.descripcion":       "Description",
	"subir.materia":           "Subject",
	"subir.materia.elegir":    "Choose a subject",
	"subir.archivo":           "PDF file",
	"subir.button":            "Upload",
	"subir.exito":             "Resource uploaded successfully",
	"subir.archivo.requerido": "Choose a file",
	"subir.archivo.pdf":       "Only PDF files are allowed",
	"subir.archivo.grande":    "The file must not exceed {max}",

	"perfil.titulo":               "My Profile",
	"perfil.nombre":               "First name",
	"perfil.apellido":             "Last name",
	"perfil.biografia":            "Biography",
	"perfil.materia.favorita":     "Favourite subject",
	"perfil.ninguna":              "None",
	"perfil.guardar":              "Save changes",
	"perfil.actualizado":          "Profile updated",
	"perfil.foto":                 "Profile picture",
	"perfil.foto.subir":           "Change picture",
	"perfil.foto.eliminar":        "Remove picture",
	"perfil.foto.actualizada":     "Picture updated",
	"perfil.foto.eliminada":       "Picture removed",
	"perfil.foto.grande":          "The image must not exceed {max}",
	"perfil.foto.imagen":          "The file must be an image",
	"perfil.foto.requerida":       "Choose an image",
	"perfil.miembro.desde":        "Member since {fecha}",
	"perfil.actividad":            "Recent activity",
	"perfil.sin.actividad":        "No recent activity",
	"perfil.ultima.actualizacion": "Last updated: {fecha}",

	"dashboard.titulo":           "Admin Dashboard",
	"dashboard.usuarios":         "Users",
	"dashboard.materias":         "Subjects",
	"dashboard.recursos":         "Resources",
	"dashboard.descargas":        "Downloads",
	"dashboard.grafico.roles":    "Users by role",
	"dashboard.grafico.materias": "Resources by subject",
	"dashboard.actividad":        "Recent activity",
	"dashboard.sin.actividad":    "No recent activity",
	"dashboard.reporte":          "Download report",
	"dashboard.subio":            "{nombre} uploaded {titulo}",

	"tiempo.ahora":   "A moment ago",
	"tiempo.minutos": "{n} min ago",
	"tiempo.horas":   "{n} h ago",
	"tiempo.dias":    "{n} days ago",

	"admin.materias.titulo":      "Manage Subjects",
	"admin.materias.nueva":       "New subject",
	"admin.materias.editar":      "Edit",
	"admin.materias.nombre":      "Name",
	"admin.materias.descripcion": "Description",
	"admin.materias.imagen":      "Image URL",
	"admin.materias.guardar":     "Save",
	"admin.materias.eliminar":    "Delete",
	"admin.materias.creada":      "Subject created",
	"admin.materias.actualizada": "Subject updated",
	"admin.materias.eliminada":   "Subject deleted",
	"admin.materias.reporte":     "PDF report",
	"admin.materias.materia":     "Subject",

	"admin.usuarios.titulo":          "Manage Users",
	"admin.usuarios.buscar":          "Search by name, email or role...",
	"admin.usuarios.nombre":          "Name",
	"admin.usuarios.email":           "Email",
	"admin.usuarios.rol":             "Role",
	"admin.usuarios.estado":          "Status",
	"admin.usuarios.activo":          "Active",
	"admin.usuarios.inactivo":        "Inactive",
	"admin.usuarios.activar":         "Activate",
	"admin.usuarios.desactivar":      "Deactivate",
	"admin.usuarios.cambiar.rol":     "Change role",
	"admin.usuarios.eliminar":        "Delete",
	"admin.usuarios.rol.cambiado":    "Role updated",
	"admin.usuarios.estado.cambiado": "Status updated",
	"admin.usuarios.eliminado":       "User deleted",
	"admin.usuarios.propio":          "You cannot do this to your own account",
	"admin.usuarios.rol.invalido":    "Invalid role",
	"admin.usuarios.usuario":         "User",

	"recuperar.titulo":         "Recover password",
	"recuperar.email":          "Email",
	"recuperar.enviar":         "Send Link",
	"recuperar.enviado":        "If the email exists you will receive a link to reset your password",
	"recuperar.enlace":         "Recovery link",
	"recuperar.token.invalido": "The link is invalid or has expired",
	"recuperar.nueva":          "New password",
	"recuperar.confirmar":      "Confirm password",
	"recuperar.restablecer":    "Reset",
	"recuperar.exito":          "Password reset. You can now log in",

	"comun.buscar":             "Search",
	"comun.cancelar":           "Cancel",
	"comun.guardar":            "Save",
	"comun.confirmar.eliminar": "Are you sure you want to delete?",
	"comun.acciones":           "Actions",
	"comun.volver":             "Back",

	"perfil.actividad.registro":      "You joined EduAventuras",
	"perfil.actividad.actualizacion": "You updated your profile",
	"dashboard.actividad.error":      "Recent activity could not be loaded",
	"dashboard.sin.materia":          "No subject",
}

var fr = map[string]string{
	"app.nombre":     "EduAventuras",
	"app.bienvenida": "Bienvenue",

	"nav.inicio":         "Accueil",
	"nav.materias":       "Matières",
	"nav.perfil":         "Profil",
	"nav.dashboard":      "Tableau de bord",
	"nav.subir":          "Publier une ressource",
	"nav.usuarios":       "Utilisateurs",
	"nav.admin.materias": "Gérer les matières",
	"nav.login":          "Connexion",
	"nav.registro":       "S'inscrire",
	"nav.logout":         "Déconnexion",
	"nav.idioma":         "Langue",

	"home.titulo":    "Apprendre en jouant",
	"home.subtitulo": "Explorez les matières et téléchargez des ressources",

	"login.titulo":     "Connexion",
	"login.email":      "Adresse e-mail",
	"login.password":   "Mot de passe",
	"login.recordarme": "Se souvenir de moi",
	"login.button":     "Connexion",
	"login.olvido":     "Mot de passe oublié ?",
	"login.sin.cuenta": "Pas de compte ? Inscrivez-vous",

	"auth.sesion.cerrada": "Déconnexion réussie",

	"error.general":          "Une erreur est survenue",
	"error.sesion.requerida": "Veuillez vous connecter pour continuer",
	"error.sesion.expirada":  "Votre session a expiré. Reconnectez-vous",
	"error.conexion":         "Erreur de connexion. Veuillez réessayer.",
	"error.reintentar":       "Réessayer",
	"error.credenciales":     "Identifiants incorrects",
	"error.no.encontrado":    "{recurso} introuvable",
	"error.acceso.denegado":  "Accès refusé : votre rôle {rol} ne permet pas cette action",
	"error.servidor":         "Erreur du serveur. Réessayez plus tard",
	"error.datos.invalidos":  "Données invalides",
	"error.email.registrado": "Cette adresse e-mail est déjà enregistrée",
	"error.pagina":           "Impossible d'afficher cette page",

	"registro.titulo":              "Créer un compte",
	"registro.nombre":              "Prénom",
	"registro.apellido":            "Nom",
	"registro.email":               "Adresse e-mail",
	"registro.password":            "Mot de passe",
	"registro.confirmar":           "Confirmer le mot de passe",
	"registro.rol":                 "Je suis",
	"registro.terminos":            "J'accepte les conditions générales",
	"registro.button":              "S'inscrire",
	"registro.exito":               "Inscription réussie. Vous pouvez vous connecter",
	"registro.password.distintas":  "Les mots de passe ne correspondent pas",
	"registro.terminos.requeridos": "Vous devez accepter les conditions générales",

	"rol.ADMIN":      "Administrateur",
	"rol.DOCENTE":    "Enseignant",
	"rol.ESTUDIANTE": "Étudiant",

	"materias.titulo":          "Matières",
	"materias.buscar":          "Rechercher des matières...",
	"materias.orden":           "Trier par",
	"materias.orden.nombre":    "Nom",
	"materias.orden.recursos":  "Nombre de ressources",
	"materias.vacio":           "Aucune matière disponible",
	"materias.recursos.uno":    "1 ressource",
	"materias.recursos.varios": "{n} ressources",
	"materias.ver":             "Voir les ressources",

	"recursos.titulo":     "Ressources de {materia}",
	"recursos.buscar":     "Rechercher des ressources...",
	"recursos.vacio":      "Cette matière n'a pas encore de ressources",
	"recursos.descargar":  "Télécharger",
	"recursos.eliminar":   "Supprimer",
	"recursos.eliminado":  "Ressource supprimée",
	"recursos.subido.por": "Publié par {nombre}",
	"recursos.descargas":  "{n} téléchargements",
	"recursos.recurso":    "Ressource",

	"subir.titulo":            "Publier une ressource",
	"subir.campo.titulo":      "Titre",
	"subir.descripcion":       "Description",
	"subir.materia":           "Matière",
	"subir.materia.elegir":    "Choisissez une matière",
	"subir.archivo":           "Fichier PDF",
	"subir.button":            "Publier",
	"subir.exito":             "Ressource publiée",
	"subir.archivo.requerido": "Choisissez un fichier",
	"subir.archivo.pdf":       "Seuls les fichiers PDF sont acceptés",
	"subir.archivo.grande":    "Le fichier ne doit pas dépasser {max}",

	"perfil.titulo":               "Mon profil",
	"perfil.nombre":               "Prénom",
	"perfil.apellido":             "Nom",
	"perfil.biografia":            "Biographie",
	"perfil.materia.favorita":     "Matière préférée",
	"perfil.ninguna":              "Aucune",
	"perfil.guardar":              "Enregistrer",
	"perfil.actualizado":          "Profil mis à jour",
	"perfil.foto":                 "Photo de profil",
	"perfil.foto.subir":           "Changer la photo",
	"perfil.foto.eliminar":        "Supprimer la photo",
	"perfil.foto.actualizada":     "Photo mise à jour",
	"perfil.foto.eliminada":       "Photo supprimée",
	"perfil.foto.grande":          "L'image ne doit pas dépasser {max}",
	"perfil.foto.imagen":          "Le fichier doit être une image",
	"perfil.foto.requerida":       "Choisissez une image",
	"perfil.miembro.desde":        "Membre depuis {fecha}",
	"perfil.actividad":            "Activité récente",
	"perfil.sin.actividad":        "Aucune activité récente",
	"perfil.ultima.actualizacion": "Dernière mise à jour : {fecha}",

	"dashboard.titulo":           "Tableau de bord",
	"dashboard.usuarios":         "Utilisateurs",
	"dashboard.materias":         "Matières",
	"dashboard.recursos":         "Ressources",
	"dashboard.descargas":        "Téléchargements",
	"dashboard.grafico.roles":    "Utilisateurs par rôle",
	"dashboard.grafico.materias": "Ressources par matière",
	"dashboard.actividad":        "Activité récente",
	"dashboard.sin.actividad":    "Aucune activité récente",
	"dashboard.reporte":          "Télécharger le rapport",
	"dashboard.subio":            "{nombre} a publié {titulo}",

	"tiempo.ahora":   "Il y a un instant",
	"tiempo.minutos": "Il y a {n} min",
	"tiempo.horas":   "Il y a {n} h",
	"tiempo.dias":    "Il y a {n} jours",

	"admin.materias.titulo":      "Gérer les matières",
	"admin.materias.nueva":       "Nouvelle matière",
	"admin.materias.editar":      "Modifier",
	"admin.materias.nombre":      "Nom",
	"admin.materias.descripcion": "Description",
	"admin.materias.imagen":      "URL de l'image",
	"admin.materias.guardar":     "Enregistrer",
	"admin.materias.eliminar":    "Supprimer",
	"admin.materias.creada":      "Matière créée",
	"admin.materias.actualizada": "Matière mise à jour",
	"admin.materias.eliminada":   "Matière supprimée",
	"admin.materias.reporte":     "Rapport PDF",
	"admin.materias.materia":     "Matière",

	"admin.usuarios.titulo":          "Gérer les utilisateurs",
	"admin.usuarios.buscar":          "Rechercher par nom, e-mail ou rôle...",
	"admin.usuarios.nombre":          "Nom",
	"admin.usuarios.email":           "E-mail",
	"admin.usuarios.rol":             "Rôle",
	"admin.usuarios.estado":          "Statut",
	"admin.usuarios.activo":          "Actif",
	"admin.usuarios.inactivo":        "Inactif",
	"admin.usuarios.activar":         "Activer",
	"admin.usuarios.desactivar":      "Désactiver",
	"admin.usuarios.cambiar.rol":     "Changer le rôle",
	"admin.usuarios.eliminar":        "Supprimer",
	"admin.usuarios.rol.cambiado":    "Rôle mis à jour",
	"admin.usuarios.estado.cambiado": "Statut mis à jour",
	"admin.usuarios.eliminado":       "Utilisateur supprimé",
	"admin.usuarios.propio":          "Impossible d'effectuer cette action sur votre propre compte",
	"admin.usuarios.rol.invalido":    "Rôle invalide",
	"admin.usuarios.usuario":         "Utilisateur",

	"recuperar.titulo":         "Récupérer le mot de passe",
	"recuperar.email":          "Adresse e-mail",
	"recuperar.enviar":         "Envoyer le lien",
	"recuperar.enviado":        "Si l'adresse existe, vous recevrez un lien de réinitialisation",
	"recuperar.enlace":         "Lien de récupération",
	"recuperar.token.invalido": "Le lien est invalide ou a expiré",
	"recuperar.nueva":          "Nouveau mot de passe",
	"recuperar.confirmar":      "Confirmer le mot de passe",
	"recuperar.restablecer":    "Réinitialiser",
	"recuperar.exito":          "Mot de passe réinitialisé. Vous pouvez vous connecter",

	"comun.buscar":             "Rechercher",
	"comun.cancelar":           "Annuler",
	"comun.guardar":            "Enregistrer",
	"comun.confirmar.eliminar": "Voulez-vous vraiment supprimer ?",
	"comun.acciones":           "Actions",
	"comun.volver":             "Retour",

	"perfil.actividad.registro":      "Vous avez rejoint EduAventuras",
	"perfil.actividad.actualizacion": "Vous avez mis à jour votre profil",
	"dashboard.actividad.error":      "Impossible de charger l'activité récente",
	"dashboard.sin.materia":          "Sans matière",
}
