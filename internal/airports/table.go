package airports

// builtinAirports maps ICAO (and a handful of FAA LID) codes to coordinates.
// To cover another flying area without editing this table, use an overlay
// file (see LoadOverlay).
var builtinAirports = map[string]Coord{
	// US - Florida and Southeast
	"KFPR": {27.4951, -80.3683},
	"KMLB": {28.1028, -80.6453},
	"KVRB": {27.6556, -80.4178},
	"KTIX": {28.5148, -80.7992},
	"KFXE": {26.1973, -80.1707},
	"KPBI": {26.6832, -80.0956},
	"KAPF": {26.1526, -81.7753},
	"X14":  {27.1814, -80.2222},
	"KFMY": {26.5866, -81.8633},
	"KOBE": {27.2626, -80.8490},
	"KSUA": {27.1817, -80.2211},
	"KSGJ": {29.9592, -81.3397},
	"KGNV": {29.6900, -82.2718},
	"KMKY": {25.9950, -80.4339},
	"KTLH": {30.3965, -84.3503},
	"KJZI": {32.6986, -80.0028},
	"KRZR": {35.1385, -83.8571},
	"KJWN": {36.1824, -86.8867},
	"KDTS": {30.4001, -86.4715},
	"KDAB": {29.1799, -81.0581},
	"KSPG": {27.7651, -82.6270},
	"KCTY": {30.5685, -85.9681},
	"KJES": {31.5540, -84.5955},
	"KLRO": {34.6097, -82.1734},
	"KIMM": {26.4332, -81.4010},
	"X51":  {25.4876, -80.5569},
	"KMTH": {24.7261, -81.0514},
	"KEYW": {24.5561, -81.7596},
	"KFHB": {29.6863, -82.5916},
	"KSEF": {27.4564, -80.3718},
	"X59":  {27.9831, -80.6816},
	"KPGD": {26.9202, -81.9906},
	"X60":  {27.2450, -80.7267},
	"KMIA": {25.7959, -80.2870},
	"KOPF": {25.9070, -80.2784},
	"KAYS": {31.2491, -82.3955},
	"KNEW": {30.0424, -90.0283},
	"F95":  {30.2183, -85.6828},
	"KZPH": {28.2282, -82.1559},
	"KTPF": {27.9136, -82.4495},
	"X06":  {27.2292, -80.9680},
	"KMYR": {33.6797, -78.9283},
	"KSSI": {31.1518, -81.3913},
	"KBCT": {26.3785, -80.1077},
	"KZWN": {36.1824, -86.8867},
	"KGRD": {33.4689, -82.1607},
	"KMGR": {31.0849, -82.0387},
	"1A3":  {33.3556, -83.7564},
	"24J":  {29.6587, -82.5850},
	"28J":  {29.9592, -81.6875},
	"42J":  {30.0558, -81.5067},
	"KLZU": {33.9781, -83.9624},
	"KCVC": {33.6322, -83.8466},
	"KEZM": {32.2164, -83.1287},

	// US - Northeast
	"KTEB": {40.8501, -74.0608},
	"KHPN": {41.0670, -73.7076},
	"KJFK": {40.6413, -73.7781},
	"KLGA": {40.7772, -73.8726},
	"KEWR": {40.6925, -74.1687},
	"KBOS": {42.3656, -71.0096},
	"KPHL": {39.8721, -75.2411},
	"KBWI": {39.1754, -76.6683},
	"KIAD": {38.9445, -77.4558},
	"KRIC": {37.5052, -77.3197},
	"KORF": {36.8946, -76.2012},
	"KROA": {37.3255, -79.9754},
	"KBDL": {41.9389, -72.6832},
	"KPVD": {41.7268, -71.4282},
	"KALB": {42.7483, -73.8017},
	"KSWF": {41.5041, -74.1048},
	"KBXM": {44.8072, -68.8281},
	"KMMU": {40.7993, -74.4149},
	"KHVN": {41.2637, -72.8868},
	"KPSM": {43.0779, -70.8233},
	"KBED": {42.4700, -71.2890},
	"KORH": {42.2673, -71.8757},
	"KOXC": {41.4786, -73.1352},
	"KABE": {40.6521, -75.4408},
	"KILG": {39.6787, -75.6065},
	"KACY": {39.4576, -74.5772},
	"KELM": {42.1600, -76.8916},
	"KBUF": {42.9405, -78.7322},
	"KROC": {43.1189, -77.6724},
	"KERI": {42.0831, -80.1739},
	"KHLG": {40.1750, -80.6463},
	"KRMN": {39.7053, -77.6726},
	"KCHO": {38.1386, -78.4529},
	"KMRB": {39.4019, -77.9846},
	"KMGW": {39.6428, -79.9164},

	// US - Midwest
	"KMDW": {41.7868, -87.7522},
	"KDAY": {39.9024, -84.2194},
	"KCMI": {40.0393, -88.2781},
	"KCWA": {44.7776, -89.6668},
	"KCAK": {40.9161, -81.4422},
	"KMKE": {42.9472, -87.8966},
	"KIND": {39.7173, -86.2944},
	"KPIT": {40.4915, -80.2329},
	"KGRR": {42.8808, -85.5228},
	"KDET": {42.4092, -83.0099},
	"KDTW": {42.2124, -83.3534},
	"KMCI": {39.2976, -94.7139},
	"KMKC": {39.1227, -94.5928},
	"KAPA": {39.5701, -104.8493},
	"KBJC": {39.9088, -105.1172},
	"KSUS": {38.6621, -90.6522},
	"KFAR": {46.9207, -96.8158},
	"KDLH": {46.8421, -92.1936},
	"KFWA": {40.9785, -85.1951},
	"KATW": {44.2581, -88.5191},
	"KPIA": {40.6642, -89.6933},
	"KLNK": {40.8510, -96.7592},
	"KOMA": {41.3032, -95.8941},
	"KTOL": {41.5868, -83.8078},
	"KCMH": {39.9980, -82.8919},
	"KBKL": {41.5175, -81.6833},
	"KMQY": {36.0089, -86.5201},
	"KYIP": {42.2379, -83.5304},
	"KLBE": {40.2759, -79.4048},

	// US - South
	"KHOU": {29.6454, -95.2789},
	"KIAH": {29.9844, -95.3414},
	"KDWH": {30.0618, -95.5546},
	"KDAL": {32.8471, -96.8518},
	"KDFW": {32.8998, -97.0403},
	"KSAT": {29.5337, -98.4698},
	"KPWA": {35.5342, -97.6471},
	"KOKC": {35.3931, -97.6007},
	"KRDU": {35.8776, -78.7875},
	"KCLT": {35.2140, -80.9431},
	"KAGS": {33.3700, -81.9645},
	"KRYY": {34.0132, -84.5971},
	"KPDK": {33.8756, -84.3020},
	"KTYS": {35.8110, -83.9940},
	"KTRI": {36.4752, -82.4074},
	"KBHM": {33.5629, -86.7535},
	"KJAX": {30.4941, -81.6879},
	"KMEM": {35.0424, -89.9767},
	"KLBB": {33.6636, -101.8228},
	"KROW": {33.3016, -104.5307},
	"KAIV": {33.1065, -88.1975},
	"KLKR": {34.7230, -80.8549},
	"KHDC": {34.4362, -82.6913},

	// US - West
	"KPHX": {33.4373, -112.0078},
	"KSDL": {33.6229, -111.9105},
	"KIWA": {33.3078, -111.6553},
	"KDVT": {33.6883, -112.0833},
	"KLAS": {36.0840, -115.1537},
	"KSLC": {40.7884, -111.9778},
	"KTUS": {32.1161, -110.9410},
	"KBFL": {35.4336, -119.0568},
	"KSAC": {38.5125, -121.4935},
	"KSJC": {37.3626, -121.9290},
	"KSAN": {32.7336, -117.1897},
	"KSNA": {33.6757, -117.8683},
	"KBUR": {34.2007, -118.3585},
	"KBFI": {47.5300, -122.3020},
	"KPAE": {47.9063, -122.2816},
	"KRNO": {39.4991, -119.7681},
	"KMTJ": {38.5098, -107.8942},
	"KGJT": {39.1224, -108.5267},
	"KBZN": {45.7775, -111.1530},
	"KBTM": {45.9548, -112.4972},
	"KELP": {31.8072, -106.3778},
	"KNYL": {32.6564, -114.6060},
	"KCOS": {38.8058, -104.7007},
	"KCPR": {42.9080, -106.4644},
	"KFNL": {40.4518, -105.0113},
	"KPVU": {40.2192, -111.7236},
	"KSGU": {37.0905, -113.5931},
	"KIFP": {35.1575, -114.5594},
	"KACV": {40.9781, -124.1086},
	"KGEG": {47.6199, -117.5338},
	"KABQ": {35.0402, -106.6090},

	// Caribbean / Central America
	"TJSJ": {18.4394, -66.0018},
	"TNCM": {18.0441, -63.1089},
	"MDPP": {18.5674, -68.3631},
	"MYNN": {25.0390, -77.4662},

	// Europe / Mediterranean
	"LLBG": {32.0114, 34.8867},
	"LCLK": {34.8751, 33.6249},
	"LCPH": {34.7180, 32.4857},
	"LIRA": {41.7994, 12.5949},
	"LIRQ": {43.8100, 11.2051},
	"LSZS": {46.5344, 9.8844},
	"EGLF": {51.2758, -0.7764},
	"EGGW": {51.8747, -0.3684},
	"EKCH": {55.6180, 12.6561},
	"EKRK": {51.8413, -8.4911},
	"LEPA": {39.5517, 2.7388},
	"LEBL": {41.2971, 2.0785},
	"LEGE": {41.9010, 2.7606},
	"LEVC": {39.4893, -0.4816},
	"LMML": {35.8575, 14.4775},
	"GMMN": {33.3675, -7.5900},
	"HECA": {30.1219, 31.4056},
	"HESH": {27.9778, 34.3950},
	"LBSF": {42.6952, 23.4114},
	"BIKF": {63.9850, -22.6056},
	"CYYR": {53.3192, -60.4258},
	"CYYZ": {43.6772, -79.6306},
	"LIML": {45.4520, 9.2765},
	"LFMN": {43.6584, 7.2159},
	"LFPB": {48.9694, 2.4414},
	"LFSB": {47.5896, 7.5299},
	"LTBS": {36.7131, 29.5847},
	"LTAC": {40.1281, 32.9951},
	"LTFE": {37.8554, 30.3282},
	"EHAM": {52.3086, 4.7639},
	"EDDL": {51.2895, 6.7668},
	"EDDV": {52.4611, 9.6850},
	"LGIR": {35.3397, 25.1803},
	"LGMK": {37.4351, 25.3481},
	"LGRP": {36.4054, 28.0862},
	"LFDH": {48.5364, -3.3463},
	"LFLS": {45.3629, 5.3294},

	// Middle East
	"OMDW": {24.8962, 55.1614},
	"OBBI": {26.2708, 50.6336},
	"OJAM": {31.7226, 35.9932},
}
