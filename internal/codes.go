package internal

import (
	"strconv"
	"strings"
)

// authorizedMessage covers the 0-99 response band. The gateway reserves it
// for authorization-success variants, most of which have no entry of their
// own.
const authorizedMessage = "Transacción autorizada para pagos y preautorizaciones"

var responseCodes = map[int]string{
	0:    authorizedMessage,
	101:  "Tarjeta caducada",
	102:  "Tarjeta en excepción transitoria o bajo sospecha de fraude",
	104:  "Operación no permitida para esa tarjeta o terminal",
	106:  "Intentos de PIN excedidos",
	116:  "Disponible insuficiente",
	118:  "Tarjeta no registrada",
	125:  "Tarjeta no efectiva",
	129:  "Código de seguridad (CVV2/CVC2) incorrecto",
	180:  "Tarjeta ajena al servicio",
	184:  "Error en la autenticación del titular",
	190:  "Denegación sin especificar motivo",
	191:  "Fecha de caducidad errónea",
	202:  "Tarjeta en excepción transitoria o bajo sospecha de fraude con retirada de tarjeta",
	900:  "Transacción autorizada para devoluciones y confirmaciones",
	904:  "Comercio no registrado en FUC",
	909:  "Error de sistema",
	912:  "Emisor no disponible",
	913:  "Pedido repetido",
	944:  "Sesión incorrecta",
	950:  "Operación de devolución no permitida",
	9064: "Número de posiciones de la tarjeta incorrecto",
	9078: "No existe método de pago válido para esa tarjeta",
	9093: "Tarjeta no existente",
	9094: "Rechazo servidores internacionales",
	9104: "Comercio con titular seguro y titular sin clave de compra segura",
	9218: "El comercio no permite operaciones seguras por la entrada /operaciones",
	9253: "Tarjeta no cumple el check-digit",
	9256: "El comercio no puede realizar preautorizaciones",
	9257: "Esta tarjeta no permite operativa de preautorizaciones",
	9261: "Operación detenida por superar el control de restricciones en la entrada al SIS",
	9912: "Emisor no disponible",
	9913: "Error en la confirmación que el comercio envía al TPV Virtual",
	9914: "Confirmación KO del comercio",
	9915: "A petición del usuario se ha cancelado el pago",
	9928: "Anulación de autorización en diferido realizada por el SIS",
	9929: "Anulación de autorización en diferido realizada por el comercio",
	9997: "Se está procesando otra transacción en SIS con la misma tarjeta",
	9998: "Operación en proceso de solicitud de datos de tarjeta",
	9999: "Operación que ha sido redirigida al emisor a autenticar",
}

var sisErrorCodes = map[string]string{
	"SIS0007": "Error al desmontar el XML de entrada",
	"SIS0008": "Error falta Ds_Merchant_MerchantCode",
	"SIS0009": "Error de formato en Ds_Merchant_MerchantCode",
	"SIS0010": "Error falta Ds_Merchant_Terminal",
	"SIS0011": "Error de formato en Ds_Merchant_Terminal",
	"SIS0014": "Error de formato en Ds_Merchant_Order",
	"SIS0015": "Error falta Ds_Merchant_Currency",
	"SIS0016": "Error de formato en Ds_Merchant_Currency",
	"SIS0018": "Error falta Ds_Merchant_Amount",
	"SIS0019": "Error de formato en Ds_Merchant_Amount",
	"SIS0020": "Error falta Ds_Merchant_MerchantSignature",
	"SIS0021": "Error la Ds_Merchant_MerchantSignature viene vacía",
	"SIS0022": "Error de formato en Ds_Merchant_TransactionType",
	"SIS0023": "Error Ds_Merchant_TransactionType desconocido",
	"SIS0024": "Error Ds_Merchant_ConsumerLanguage tiene más de 3 posiciones",
	"SIS0025": "Error de formato en Ds_Merchant_ConsumerLanguage",
	"SIS0026": "Error No existe el comercio / terminal enviado",
	"SIS0027": "Error Moneda enviada por el comercio es diferente a la dada de alta",
	"SIS0028": "Error Comercio / terminal está dado de baja",
	"SIS0030": "Error en un pago con tarjeta ha llegado un tipo de operación que no es ni pago ni preautorización",
	"SIS0031": "Método de pago no definido",
	"SIS0034": "Error de acceso a la Base de Datos",
	"SIS0038": "Error en java",
	"SIS0040": "Error el comercio / terminal no tiene ningún método de pago asignado",
	"SIS0041": "Error en el cálculo de la firma de datos del comercio",
	"SIS0042": "La firma enviada no es correcta",
	"SIS0043": "Error al realizar la notificación on-line",
	"SIS0046": "El BIN de la tarjeta no está dado de alta",
	"SIS0051": "Error número de pedido repetido",
	"SIS0054": "Error no existe operación sobre la que realizar la devolución",
	"SIS0055": "Error no existe más de una operación sobre la que realizar la devolución",
	"SIS0056": "La operación sobre la que se desea devolver no está autorizada",
	"SIS0057": "El importe a devolver supera el permitido",
	"SIS0058": "Inconsistencia de datos, en la validación de una confirmación",
	"SIS0059": "Error no existe operación sobre la que realizar la confirmación",
	"SIS0060": "Ya existe una confirmación asociada a la preautorización",
	"SIS0061": "La preautorización sobre la que se desea confirmar no está autorizada",
	"SIS0062": "El importe a confirmar supera el permitido",
	"SIS0063": "Error. Número de tarjeta no disponible",
	"SIS0064": "Error. Número de posiciones de la tarjeta incorrecto",
	"SIS0065": "Error. El número de tarjeta no es numérico",
	"SIS0066": "Error. Mes de caducidad no disponible",
	"SIS0067": "Error. El mes de la caducidad no es numérico",
	"SIS0068": "Error. El mes de la caducidad no es válido",
	"SIS0069": "Error. Año de caducidad no disponible",
	"SIS0070": "Error. El año de la caducidad no es numérico",
	"SIS0071": "Tarjeta caducada",
	"SIS0072": "Operación no anulable",
	"SIS0074": "Error falta Ds_Merchant_Order",
	"SIS0075": "Error el Ds_Merchant_Order tiene menos de 4 posiciones o más de 12",
	"SIS0076": "Error el Ds_Merchant_Order no tiene las cuatro primeras posiciones numéricas",
	"SIS0078": "Método de pago no disponible para su tarjeta",
	"SIS0079": "Error al realizar el pago con tarjeta",
	"SIS0081": "La sesión es nueva, se han perdido los datos almacenados",
	"SIS0089": "El valor de Ds_Merchant_ExpiryDate no ocupa 4 posiciones",
	"SIS0092": "El valor de Ds_Merchant_ExpiryDate es nulo",
	"SIS0093": "Tarjeta no encontrada en la tabla de rangos",
	"SIS0112": "Error. El tipo de transacción especificado en Ds_Merchant_TransactionType no está permitido",
	"SIS0115": "Error no existe operación sobre la que realizar el pago de la cuota",
	"SIS0116": "La operación sobre la que se desea pagar una cuota no es una operación válida",
	"SIS0117": "La operación sobre la que se desea pagar una cuota no está autorizada",
	"SIS0118": "Se ha excedido el importe total de las cuotas",
	"SIS0119": "Valor del campo Ds_Merchant_DateFrecuency no válido",
	"SIS0120": "Valor del campo Ds_Merchant_ChargeExpiryDate no válido",
	"SIS0132": "La fecha de Confirmación de Autorización no puede superar en más de 7 días a la de Preautorización",
	"SIS0139": "Error el pago recurrente inicial está duplicado",
	"SIS0142": "Tiempo excedido para el pago",
	"SIS0216": "Error Ds_Merchant_CVV2 tiene más de 3/4 posiciones",
	"SIS0217": "Error de formato en Ds_Merchant_CVV2",
	"SIS0218": "El comercio no permite operaciones seguras por la entrada /operaciones",
	"SIS0219": "Error el número de operaciones de la tarjeta supera el límite permitido para el comercio",
	"SIS0220": "Error el importe acumulado de la tarjeta supera el límite permitido para el comercio",
	"SIS0221": "Error el CVV2 es obligatorio",
	"SIS0222": "Ya existe una anulación asociada a la preautorización",
	"SIS0223": "La preautorización que se desea anular no está autorizada",
	"SIS0224": "El comercio no permite anulaciones por no tener firma ampliada",
	"SIS0225": "Error no existe operación sobre la que realizar la anulación",
	"SIS0226": "Inconsistencia de datos, en la validación de una anulación",
	"SIS0227": "Valor del campo Ds_Merchant_TransactionDate no válido",
	"SIS0252": "El comercio no permite el envío de tarjeta",
	"SIS0253": "Tarjeta no cumple el check-digit",
	"SIS0261": "Operación detenida por superar el control de restricciones en la entrada al SIS",
	"SIS0274": "Tipo de operación desconocida o no permitida por esta entrada al SIS",
	"SIS0295": "Error de duplicidad de operación. Se puede intentar de nuevo",
	"SIS0296": "Error al validar los datos de la operación de Tarjeta en Archivo Inicial",
	"SIS0297": "Número de operaciones sucesivas de Tarjeta en Archivo superado",
	"SIS0298": "El comercio no permite realizar operaciones de Tarjeta en Archivo",
	"SIS0319": "El comercio no pertenece al grupo especificado en Ds_Merchant_Group",
	"SIS0321": "La referencia indicada en Ds_Merchant_Identifier no está asociada al comercio",
	"SIS0322": "Error de formato en Ds_Merchant_Group",
	"SIS0325": "Se ha pedido no mostrar pantallas pero no se ha enviado ninguna referencia",
	"SIS0429": "Error en la versión enviada por el comercio en el parámetro Ds_SignatureVersion",
	"SIS0430": "Error al decodificar el parámetro Ds_MerchantParameters",
	"SIS0431": "Error del objeto JSON que se envía codificado en el parámetro Ds_MerchantParameters",
	"SIS0432": "Error FUC del comercio erróneo",
	"SIS0433": "Error Terminal del comercio erróneo",
	"SIS0434": "Error ausencia de número de pedido en la operación enviada por el comercio",
	"SIS0435": "Error en el cálculo de la firma",
}

// ResponseCodeMessage resolves a numeric gateway response code to its human
// message. Decoding is best effort: malformed or negative codes and genuinely
// unknown codes both report a miss, never an error.
func ResponseCodeMessage(code string) (string, bool) {
	number, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || number < 0 {
		return "", false
	}
	if message, ok := responseCodes[number]; ok {
		return message, true
	}
	if number < 100 {
		return authorizedMessage, true
	}
	return "", false
}

// SISErrorMessage resolves a SIS error identifier ("SIS0042") to its message.
func SISErrorMessage(code string) (string, bool) {
	message, ok := sisErrorCodes[strings.TrimSpace(code)]
	return message, ok
}
